// Package kernel holds the shared value objects of the workshop domain:
// identifiers, money and the clock every time-dependent rule reads "now" from.
//
// Values in this package are immutable and carry no persistence concerns.
// Their zero values are invalid where that matters (UUID, Money with an
// unset guard) so that missing constructor calls are caught by Validate.
package kernel
