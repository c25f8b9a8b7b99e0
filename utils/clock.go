package utils

import (
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/gin-gonic/gin"
)

// Clock is the time source of the ranking services.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns Fixed. Used in tests.
type FixedClock struct {
	Fixed time.Time
}

func (fc FixedClock) Now() time.Time {
	return fc.Fixed
}

// RequestLocation reads the caller's IANA zone from the X-Timezone header
// or the tz query parameter. Day boundaries are computed in this zone.
func RequestLocation(c *gin.Context) (*time.Location, error) {
	name := strings.TrimSpace(c.GetHeader("X-Timezone"))
	if name == "" {
		name = strings.TrimSpace(c.Query("tz"))
	}
	if name == "" {
		return time.UTC, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, ValidationError("Unknown time zone: " + name)
	}
	return loc, nil
}
