package config

import (
	"fmt"
	"time"
)

// ValidateDurationRange checks that d lies in [min, max].
func ValidateDurationRange(d, min, max time.Duration) error {
	if min > max {
		return fmt.Errorf("bad range: min %v > max %v", min, max)
	}
	if d < min || d > max {
		return fmt.Errorf("duration %v outside allowed range [%v, %v]", d, min, max)
	}
	return nil
}
