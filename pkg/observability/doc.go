/*
Package observability lets embedders watch the comparison facade without
touching the core: a Collector receives one callback per comparison and per
topology reconstruction, after the pure computation has finished.

The package ships a prometheus-backed collector for services that embed the
library; the library itself serves nothing.
*/
package observability
