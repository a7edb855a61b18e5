package command

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"

	"github.com/zoobzio/haxxor"
)

func newTestShell(algo haxxor.Algorithm) (*shell, *bytes.Buffer) {
	m, _ := haxxor.ByAlgorithm(algo)
	var buf bytes.Buffer
	return newShell(m, &buf, hclog.NewNullLogger()), &buf
}

func TestShell_DefaultsToSHA1Encrypt(t *testing.T) {
	out, _ := run(t, "hello\n", "shell")

	if !strings.Contains(out, "SHA1/encrypt> ") {
		t.Errorf("output = %q, want SHA1 encrypt prompt", out)
	}
	if !strings.Contains(out, "qvTGHdzF6KLavt4PO0gs2a6pQ00=\n") {
		t.Errorf("output = %q, want untagged SHA1 digest", out)
	}
}

func TestShell_ModuleFlag(t *testing.T) {
	out, _ := run(t, "hello\n", "--module", "md5", "shell")
	if !strings.Contains(out, "XUFAKrxLKna5cZ2REBfFkg==\n") {
		t.Errorf("output = %q, want MD5 digest", out)
	}
}

func TestShell_SwitchModeAndModule(t *testing.T) {
	s, buf := newTestShell(haxxor.SHA1)

	if !s.handle(":module aes128") {
		t.Fatal("handle() should keep running")
	}
	if s.module.Algorithm() != haxxor.AES128 {
		t.Fatalf("module = %v, want AES128", s.module.Algorithm())
	}

	buf.Reset()
	s.handle("round trip")
	hash := strings.TrimSpace(buf.String())
	if strings.HasPrefix(hash, "AES128|") {
		t.Errorf("shell encrypt should omit the tag, got %q", hash)
	}

	s.handle(":decrypt")
	if !s.decrypt {
		t.Fatal("mode should be decrypt")
	}

	buf.Reset()
	s.handle(hash)
	if got := strings.TrimSpace(buf.String()); got != "round trip" {
		t.Errorf("decrypt = %q, want %q", got, "round trip")
	}

	s.handle(":encrypt")
	if s.decrypt {
		t.Error("mode should be encrypt")
	}
}

func TestShell_ErrorsInline(t *testing.T) {
	tests := []struct {
		name  string
		algo  haxxor.Algorithm
		lines []string
		want  string
	}{
		{"digest decrypt", haxxor.SHA256, []string{":decrypt", "abc="}, "! " + msgNotReversible},
		{"bad hash", haxxor.AES256, []string{":decrypt", "not-a-hash"}, "! AES256 decrypt: decode failed"},
		{"unknown module", haxxor.SHA1, []string{":module rot13"}, "! " + msgInvalidModule},
		{"unset module", haxxor.SHA1, []string{":module unset"}, "! " + msgInvalidModule},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, buf := newTestShell(tt.algo)
			for _, line := range tt.lines {
				if !s.handle(line) {
					t.Fatalf("handle(%q) stopped the shell", line)
				}
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestShell_Quit(t *testing.T) {
	s, _ := newTestShell(haxxor.SHA1)
	if s.handle(":quit") {
		t.Error(":quit should stop the shell")
	}

	out, _ := run(t, ":quit\nhello\n", "shell")
	if strings.Contains(out, "qvTGHdzF6KLavt4PO0gs2a6pQ00=") {
		t.Error("lines after :quit should not be processed")
	}
}

func TestShell_BlankLinesIgnored(t *testing.T) {
	s, buf := newTestShell(haxxor.SHA1)
	s.handle("   ")
	if buf.Len() != 0 {
		t.Errorf("output = %q, want nothing for a blank line", buf.String())
	}
}

func TestShell_LongLine(t *testing.T) {
	s, buf := newTestShell(haxxor.SHA1)
	input := strings.Repeat("a", 70*1024) + "\nhello\n"

	if err := s.run(strings.NewReader(input)); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	if !strings.Contains(buf.String(), "qvTGHdzF6KLavt4PO0gs2a6pQ00=\n") {
		t.Error("the session should continue past a long line")
	}
}

func TestShell_LongAESHash(t *testing.T) {
	plain := strings.Repeat("x", 100*1024)
	m, _ := haxxor.ByAlgorithm(haxxor.AES256)
	hash, err := m.Encrypt(plain, false)
	if err != nil {
		t.Fatalf("Encrypt() error: %v", err)
	}

	s, buf := newTestShell(haxxor.AES256)
	if err := s.run(strings.NewReader(":decrypt\n" + hash + "\nhello\n")); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	if !strings.Contains(buf.String(), plain+"\n") {
		t.Error("long AES hash was not decrypted")
	}
}

func TestShell_FinalLineWithoutNewline(t *testing.T) {
	s, buf := newTestShell(haxxor.SHA1)
	if err := s.run(strings.NewReader("hello")); err != nil {
		t.Fatalf("run() error: %v", err)
	}
	if !strings.Contains(buf.String(), "qvTGHdzF6KLavt4PO0gs2a6pQ00=\n") {
		t.Errorf("output = %q, want digest of an unterminated line", buf.String())
	}
}
