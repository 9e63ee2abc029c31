package clouds_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-theft-auto/clouds"
)

func TestCompileErrorMessage(t *testing.T) {
	var err error = &clouds.CompileError{
		Stage: clouds.StageFragment,
		Log:   "0:3(1): error: syntax error, unexpected '}'\n",
	}

	msg := err.Error()
	if !strings.HasPrefix(msg, "fragment shader compilation failed: ") {
		t.Errorf("unexpected message %q", msg)
	}
	if !strings.Contains(msg, "syntax error") {
		t.Errorf("message lost the driver log: %q", msg)
	}

	var ce *clouds.CompileError
	if !errors.As(err, &ce) || ce.Stage != clouds.StageFragment {
		t.Error("errors.As failed to recover the compile error")
	}
}

func TestLinkErrorMessage(t *testing.T) {
	err := &clouds.LinkError{Log: "error: vertex shader lacks main\n"}
	if err.Error() != "shader program linking failed: error: vertex shader lacks main" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestInfoLog(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want string
	}{
		{"empty", []byte{0}, ""},
		{"terminated", []byte("bad token\x00\x00"), "bad token"},
		{"unterminated", []byte("bad token"), "bad token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clouds.InfoLog(tt.buf); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestInfoLogKeepsLongMessages(t *testing.T) {
	long := strings.Repeat("x", 4096)
	if got := clouds.InfoLog([]byte(long + "\x00")); len(got) != 4096 {
		t.Errorf("expected 4096 bytes, got %d", len(got))
	}
}

func TestStageString(t *testing.T) {
	if clouds.StageVertex.String() != "vertex" || clouds.StageFragment.String() != "fragment" {
		t.Error("unexpected stage names")
	}
	if clouds.Stage(9).String() != "stage(9)" {
		t.Errorf("unexpected name %q", clouds.Stage(9).String())
	}
}

func TestShaderSourcesTargetCoreProfile(t *testing.T) {
	for _, src := range []string{clouds.VertexShaderSource, clouds.FragmentShaderSource} {
		if !strings.HasPrefix(src, "#version 330 core\n") {
			t.Errorf("source does not start with a 330 core directive: %q", src[:20])
		}
	}
}
