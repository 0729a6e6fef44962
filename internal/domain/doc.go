// Package domain contains the types shared between the example service and
// its adapters: sentinel errors, validation and upstream status errors, and
// the results of connectivity probes.
package domain
