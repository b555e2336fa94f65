package service

// TaxPolicy computes the tax line for a billing from its post-discount base.
// The default deployment charges no tax; venues that need one swap in their
// own policy at wiring time.
type TaxPolicy interface {
	Tax(base int64) int64
}

// ZeroTaxPolicy charges no tax
type ZeroTaxPolicy struct{}

func (ZeroTaxPolicy) Tax(base int64) int64 { return 0 }

// PercentageTaxPolicy charges a flat percentage of the post-discount base,
// rounded down to whole currency units.
type PercentageTaxPolicy struct {
	Percentage float64
}

func (p PercentageTaxPolicy) Tax(base int64) int64 {
	if base <= 0 || p.Percentage <= 0 {
		return 0
	}
	return int64(float64(base) * p.Percentage / 100)
}
