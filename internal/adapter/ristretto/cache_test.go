package ristretto_test

import (
	"testing"

	"github.com/ich-youness/Financial-Services-OS/internal/adapter/ristretto"
	cacheport "github.com/ich-youness/Financial-Services-OS/internal/port/cache"
)

func TestCacheCompliance(t *testing.T) {
	c, err := ristretto.New(1 << 20)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	cacheport.RunComplianceTests(t, c)
}
