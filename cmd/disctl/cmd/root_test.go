package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/discodec/internal/dis/wire"
	"github.com/danmuck/discodec/internal/testutil/testlog"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand(strings.NewReader(stdin))
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestTypesListsCatalog(t *testing.T) {
	testlog.Start(t)
	out, err := run(t, "", "types")
	if err != nil {
		t.Fatalf("types: %v", err)
	}
	for _, want := range []string{"IntercomIdentifier", "ElectronicEmissionSystemData", "container"} {
		if !strings.Contains(out, want) {
			t.Fatalf("types output missing %q:\n%s", want, out)
		}
	}
}

func TestSizeAndZero(t *testing.T) {
	testlog.Start(t)
	out, err := run(t, "", "size", "launchedmunitionrecord")
	if err != nil || strings.TrimSpace(out) != "48" {
		t.Fatalf("size: %q err=%v", out, err)
	}
	out, err = run(t, "", "zero", "EntityIDList")
	if err != nil || strings.TrimSpace(out) != "00 00" {
		t.Fatalf("zero: %q err=%v", out, err)
	}
}

func TestLayoutPrintsOffsets(t *testing.T) {
	testlog.Start(t)
	out, err := run(t, "", "layout", "SilentEntitySystem")
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 || !strings.Contains(lines[2], "entityType") || !strings.HasPrefix(strings.TrimSpace(lines[2]), "4 ") {
		t.Fatalf("unexpected layout:\n%s", out)
	}
}

func TestDecodeHexArgument(t *testing.T) {
	testlog.Start(t)
	out, err := run(t, "", "decode", "IntercomIdentifier", "00 01 00 02 00 03 00 04")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, want := range []string{"IntercomIdentifier (8 bytes)", "siteNumber: 1", "intercomNumber: 4"} {
		if !strings.Contains(out, want) {
			t.Fatalf("dump missing %q:\n%s", want, out)
		}
	}
}

func TestDecodeHexStdin(t *testing.T) {
	testlog.Start(t)
	out, err := run(t, "0x000100020003\n", "decode", "EntityID")
	if err != nil || !strings.Contains(out, "entity: 3") {
		t.Fatalf("decode stdin: %q err=%v", out, err)
	}
}

func TestDecodeFailureExitCode(t *testing.T) {
	testlog.Start(t)
	_, err := run(t, "", "decode", "EntityID", "0001")
	if !errors.Is(err, wire.ErrUnderrun) || ExitCode(err) != ExitDecode {
		t.Fatalf("expected decode exit, got code=%d err=%v", ExitCode(err), err)
	}
	_, err = run(t, "", "decode", "EntityID", "zz")
	if err == nil || ExitCode(err) != ExitError {
		t.Fatalf("bad hex should be an input error, got code=%d err=%v", ExitCode(err), err)
	}
	_, err = run(t, "", "decode", "NoSuchRecord", "00")
	if err == nil || ExitCode(err) != ExitError {
		t.Fatalf("unknown type should be an input error, got %v", err)
	}
}

func TestDecodeTrailingBytes(t *testing.T) {
	testlog.Start(t)
	input := "00010002000300ff"
	if _, err := run(t, "", "decode", "EntityID", input); ExitCode(err) != ExitDecode {
		t.Fatalf("strict decode should fail, got %v", err)
	}
	if _, err := run(t, "", "--allow-trailing", "decode", "EntityID", input); err != nil {
		t.Fatalf("lenient decode: %v", err)
	}
}

func TestDecodeRawFile(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "id.bin")
	if err := os.WriteFile(path, []byte{0, 7, 0, 8, 0, 9}, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, err := run(t, "", "--format", "raw", "decode", "EntityID", path)
	if err != nil || !strings.Contains(out, "site: 7") {
		t.Fatalf("raw decode: %q err=%v", out, err)
	}
}

func TestStatsPrintsMetrics(t *testing.T) {
	testlog.Start(t)
	out, err := run(t, "", "--stats", "decode", "EntityID", "000100020003")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, want := range []string{
		`discodec_codec_operations_total{op="decode",record="EntityID",result="ok"} 1`,
		`discodec_codec_bytes_total{op="decode",record="EntityID"} 6`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("stats missing %q:\n%s", want, out)
		}
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	testlog.Start(t)
	path := filepath.Join(t.TempDir(), "disctl.toml")
	if _, err := run(t, "", "config", "init", path); err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, err := run(t, "", "config", "init", path); err == nil {
		t.Fatalf("second init without --force should fail")
	}
	out, err := run(t, "", "config", "validate", path)
	if err != nil || !strings.HasPrefix(out, "ok:") {
		t.Fatalf("validate: %q err=%v", out, err)
	}

	if err := os.WriteFile(path, []byte("dump_indent = 4\nstats = true\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, err = run(t, "", "--config", path, "decode", "EntityID", "000100020003")
	if err != nil {
		t.Fatalf("decode with config: %v", err)
	}
	if !strings.Contains(out, "\n    site: 1") || !strings.Contains(out, "discodec_codec_operations_total") {
		t.Fatalf("config not applied:\n%s", out)
	}
}
