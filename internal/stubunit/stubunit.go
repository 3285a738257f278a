// Package stubunit builds a small FMI 2.0 unit from C source for tests.
//
// The unit is compiled with the system C compiler ($CC, or cc). Tests that
// need it are skipped when no compiler is available.
package stubunit

import (
	"archive/zip"
	_ "embed"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/fmiwrap/fmiwrap-go/internal/fmu"
)

//go:embed testdata/stub_unit.c
var source []byte

// ModelIdentifier is the library base name inside an archive.
const ModelIdentifier = "stub_unit"

// GUID is the guid the model description declares. Instantiating with
// FailGUID makes fmi2Instantiate return NULL.
const (
	GUID     = "{5c0e2a3a-0d2e-4f5b-9a1e-7f4c1b2d3e4f}"
	FailGUID = "fail"
)

// Value references of the stub's variables.
const (
	RealTime  = 0
	RealX     = 1
	RealV     = 2
	RealGain  = 3
	IntSteps  = 0
	IntNotify = 1
	BoolFlagA = 0
	BoolFlagB = 1
	BoolTwo   = 2
	StrLabel  = 0
)

// ModelDescription is the modelDescription.xml packed by Archive.
const ModelDescription = `<?xml version="1.0" encoding="UTF-8"?>
<fmiModelDescription fmiVersion="2.0" modelName="Stub" guid="{5c0e2a3a-0d2e-4f5b-9a1e-7f4c1b2d3e4f}"
    description="test unit" generationTool="stubunit" numberOfEventIndicators="1">
  <CoSimulation modelIdentifier="stub_unit" canHandleVariableCommunicationStepSize="true"
      canGetAndSetFMUstate="true" canSerializeFMUstate="true"/>
  <ModelExchange modelIdentifier="stub_unit" canGetAndSetFMUstate="true"/>
  <ModelVariables>
    <ScalarVariable name="time" valueReference="0" causality="independent" variability="continuous"><Real/></ScalarVariable>
    <ScalarVariable name="x" valueReference="1" causality="output" variability="continuous" initial="exact"><Real start="0"/></ScalarVariable>
    <ScalarVariable name="v" valueReference="2" causality="input" variability="continuous"><Real start="0"/></ScalarVariable>
    <ScalarVariable name="gain" valueReference="3" causality="parameter" variability="fixed"><Real start="1"/></ScalarVariable>
    <ScalarVariable name="steps" valueReference="0" causality="output" variability="discrete"><Integer/></ScalarVariable>
    <ScalarVariable name="notify" valueReference="1" causality="parameter" variability="tunable"><Integer start="0"/></ScalarVariable>
    <ScalarVariable name="flagA" valueReference="0" causality="input" variability="discrete"><Boolean start="false"/></ScalarVariable>
    <ScalarVariable name="flagB" valueReference="1" causality="input" variability="discrete"><Boolean start="false"/></ScalarVariable>
    <ScalarVariable name="two" valueReference="2" causality="output" variability="discrete"><Boolean/></ScalarVariable>
    <ScalarVariable name="label" valueReference="0" causality="parameter" variability="tunable"><String start="stub"/></ScalarVariable>
  </ModelVariables>
  <ModelStructure>
    <Outputs><Unknown index="2"/><Unknown index="5"/><Unknown index="9"/></Outputs>
  </ModelStructure>
</fmiModelDescription>
`

// Macros accepted by Build that leave a mandatory entry point out of the
// library.
const (
	OmitInstantiate  = "STUB_OMIT_INSTANTIATE"
	OmitFreeInstance = "STUB_OMIT_FREE_INSTANCE"
)

// Build compiles the stub unit into a fresh temporary directory and returns
// the library path. Every call yields a separate library, so the stub's
// counters start at zero. Each macro in omit is defined for the compiler.
func Build(tb testing.TB, omit ...string) string {
	tb.Helper()
	if runtime.GOOS == "windows" {
		tb.Skip("stub unit is built with a unix C toolchain")
	}
	cc := os.Getenv("CC")
	if cc == "" {
		cc = "cc"
	}
	if _, err := exec.LookPath(cc); err != nil {
		tb.Skipf("no C compiler: %v", err)
	}

	dir := tb.TempDir()
	src := filepath.Join(dir, "stub_unit.c")
	if err := os.WriteFile(src, source, 0o600); err != nil {
		tb.Fatalf("write stub source: %v", err)
	}
	lib := filepath.Join(dir, ModelIdentifier+fmu.LibraryExt())
	args := []string{"-shared", "-fPIC", "-O0"}
	for _, macro := range omit {
		args = append(args, "-D"+macro)
	}
	out, err := exec.Command(cc, append(args, "-o", lib, src)...).CombinedOutput()
	if err != nil {
		tb.Fatalf("compile stub unit: %v\n%s", err, out)
	}
	return lib
}

// Archive builds the stub unit and packs it into a .fmu archive with the
// library under binaries/<platform>/. It returns the archive path.
func Archive(tb testing.TB) string {
	tb.Helper()
	lib := Build(tb)
	bin, err := os.ReadFile(lib)
	if err != nil {
		tb.Fatalf("read stub library: %v", err)
	}
	return WriteArchive(tb, map[string][]byte{
		"modelDescription.xml": []byte(ModelDescription),
		"binaries/" + fmu.Platform() + "/" + ModelIdentifier + fmu.LibraryExt(): bin,
		"resources/readme.txt": []byte("stub unit resources\n"),
	})
}

// WriteArchive writes files into a zip archive in a temporary directory.
func WriteArchive(tb testing.TB, files map[string][]byte) string {
	tb.Helper()
	path := filepath.Join(tb.TempDir(), ModelIdentifier+".fmu")
	f, err := os.Create(path)
	if err != nil {
		tb.Fatalf("create archive: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for name, data := range files {
		w, err := zw.Create(name)
		if err != nil {
			tb.Fatalf("add %s: %v", name, err)
		}
		if _, err := w.Write(data); err != nil {
			tb.Fatalf("write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		tb.Fatalf("close archive: %v", err)
	}
	return path
}
