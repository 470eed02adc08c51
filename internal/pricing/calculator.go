// Package pricing estimates monthly cost for a mailstead deployment.
package pricing

import (
	"github.com/mailstead/mailstead/internal/config"
)

// Prices contains approximate AWS on-demand pricing in USD per month,
// us-east-1, 730-hour month. Good enough for comparing environments;
// not a billing source.
type Prices struct {
	// Instances maps instance type to monthly price.
	Instances map[string]float64

	// VolumePerGB is the gp3 EBS price per GB-month.
	VolumePerGB float64

	// AlarmEach is the CloudWatch standard alarm price per month.
	AlarmEach float64

	// SnapshotPerGB is the EBS snapshot storage price per GB-month,
	// used to approximate backup cost for a full-volume baseline.
	SnapshotPerGB float64

	// HostedZone is the Route53 hosted zone price per month.
	HostedZone float64
}

// DefaultPrices returns the built-in price table.
func DefaultPrices() *Prices {
	return &Prices{
		Instances: map[string]float64{
			"t3.small":  15.18,
			"t3.medium": 30.37,
			"t3.large":  60.74,
			"m5.large":  70.08,
			"m5.xlarge": 140.16,
		},
		VolumePerGB:   0.08,
		AlarmEach:     0.10,
		SnapshotPerGB: 0.05,
		HostedZone:    0.50,
	}
}

// LineItem is a single cost line.
type LineItem struct {
	Description string
	Quantity    int
	Unit        string
	UnitPrice   float64
	Total       float64
}

// Estimate is a calculated monthly cost estimate.
type Estimate struct {
	Environment config.Environment
	Items       []LineItem
	Total       float64
}

// AnnualCost returns the estimated annual cost.
func (e *Estimate) AnnualCost() float64 {
	return e.Total * 12
}

// Calculator produces estimates from a price table.
type Calculator struct {
	prices *Prices
}

// NewCalculator creates a calculator with the built-in price table.
func NewCalculator() *Calculator {
	return &Calculator{prices: DefaultPrices()}
}

// NewCalculatorWithPrices creates a calculator with specific pricing.
func NewCalculatorWithPrices(prices *Prices) *Calculator {
	return &Calculator{prices: prices}
}

// Calculate estimates the monthly cost of a resolved configuration.
// Line items follow the same predicates as stack composition: alarms
// only when monitoring is on, snapshot storage only when backups are
// on, a hosted zone only when DNS would be deployed.
func (c *Calculator) Calculate(cfg *config.Resolved) *Estimate {
	e := &Estimate{Environment: cfg.Environment}

	instancePrice := c.prices.Instances[cfg.InstanceClass]
	e.add(LineItem{
		Description: "EC2 instance",
		Quantity:    1,
		Unit:        cfg.InstanceClass,
		UnitPrice:   instancePrice,
		Total:       instancePrice,
	})

	e.add(LineItem{
		Description: "EBS volume (gp3)",
		Quantity:    cfg.VolumeSizeGB,
		Unit:        "GB",
		UnitPrice:   c.prices.VolumePerGB,
		Total:       float64(cfg.VolumeSizeGB) * c.prices.VolumePerGB,
	})

	if cfg.Monitoring {
		const alarmCount = 3
		e.add(LineItem{
			Description: "CloudWatch alarms",
			Quantity:    alarmCount,
			Unit:        "alarm",
			UnitPrice:   c.prices.AlarmEach,
			Total:       alarmCount * c.prices.AlarmEach,
		})
	}

	if cfg.Backups {
		e.add(LineItem{
			Description: "Backup snapshots",
			Quantity:    cfg.VolumeSizeGB,
			Unit:        "GB",
			UnitPrice:   c.prices.SnapshotPerGB,
			Total:       float64(cfg.VolumeSizeGB) * c.prices.SnapshotPerGB,
		})
	}

	if cfg.HasDNS() {
		e.add(LineItem{
			Description: "Route53 hosted zone",
			Quantity:    1,
			Unit:        "zone",
			UnitPrice:   c.prices.HostedZone,
			Total:       c.prices.HostedZone,
		})
	}

	return e
}

func (e *Estimate) add(item LineItem) {
	e.Items = append(e.Items, item)
	e.Total += item.Total
}
