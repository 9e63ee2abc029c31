package clouds_test

import (
	"testing"

	"github.com/go-theft-auto/clouds"
)

func TestSetVerbose(t *testing.T) {
	defer clouds.SetVerbose(false)

	if clouds.Verbose() {
		t.Fatal("expected debug logging off by default")
	}
	clouds.SetVerbose(true)
	if !clouds.Verbose() {
		t.Error("expected debug logging on after SetVerbose(true)")
	}
	clouds.SetVerbose(false)
	if clouds.Verbose() {
		t.Error("expected debug logging off after SetVerbose(false)")
	}
}
