package fmu_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fmiwrap/fmiwrap-go/internal/fmu"
	"github.com/fmiwrap/fmiwrap-go/internal/stubunit"
)

func TestParseModelDescription(t *testing.T) {
	md, err := fmu.ParseModelDescription(strings.NewReader(stubunit.ModelDescription))
	require.NoError(t, err)

	require.Equal(t, "2.0", md.FMIVersion)
	require.Equal(t, "Stub", md.ModelName)
	require.Equal(t, stubunit.GUID, md.GUID)
	require.Equal(t, 1, md.NumberOfEventIndicators)
	require.True(t, md.CoSimulation.CanSerializeFMUstate)
	require.Len(t, md.Variables, 10)

	id, err := md.ModelIdentifier(true)
	require.NoError(t, err)
	require.Equal(t, stubunit.ModelIdentifier, id)

	x, err := md.Variable("x")
	require.NoError(t, err)
	require.Equal(t, uint32(stubunit.RealX), x.ValueReference)
	require.Equal(t, fmu.KindReal, x.Kind())
	require.Equal(t, "output", x.Causality)
	start, ok := x.Start()
	require.True(t, ok)
	require.Equal(t, "0", start)

	two, err := md.Variable("two")
	require.NoError(t, err)
	require.Equal(t, fmu.KindBoolean, two.Kind())
	_, ok = two.Start()
	require.False(t, ok)

	label, err := md.Variable("label")
	require.NoError(t, err)
	require.Equal(t, "String", label.Kind().String())

	_, err = md.Variable("nope")
	require.ErrorIs(t, err, fmu.ErrUnknownVariable)
}

func TestParseModelDescriptionErrors(t *testing.T) {
	cases := map[string]struct {
		doc  string
		want error
	}{
		"malformed": {`<fmiModelDescription`, fmu.ErrModelDescription},
		"fmi1":      {`<fmiModelDescription fmiVersion="1.0" guid="g"><CoSimulation modelIdentifier="m"/></fmiModelDescription>`, fmu.ErrUnsupportedVersion},
		"no guid":   {`<fmiModelDescription fmiVersion="2.0"><CoSimulation modelIdentifier="m"/></fmiModelDescription>`, fmu.ErrModelDescription},
		"no iface":  {`<fmiModelDescription fmiVersion="2.0" guid="g"></fmiModelDescription>`, fmu.ErrModelDescription},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := fmu.ParseModelDescription(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestModelIdentifierMissingInterface(t *testing.T) {
	md, err := fmu.ParseModelDescription(strings.NewReader(
		`<fmiModelDescription fmiVersion="2.0" guid="g"><ModelExchange modelIdentifier="me"/></fmiModelDescription>`))
	require.NoError(t, err)
	_, err = md.ModelIdentifier(true)
	require.ErrorIs(t, err, fmu.ErrNoInterface)
	id, err := md.ModelIdentifier(false)
	require.NoError(t, err)
	require.Equal(t, "me", id)
}

func fakeArchive(t *testing.T, extra map[string][]byte) string {
	files := map[string][]byte{
		"modelDescription.xml": []byte(stubunit.ModelDescription),
		"binaries/" + fmu.Platform() + "/" + stubunit.ModelIdentifier + fmu.LibraryExt(): []byte("not really a library"),
		"resources/data.txt": []byte("data"),
	}
	for k, v := range extra {
		files[k] = v
	}
	return stubunit.WriteArchive(t, files)
}

func TestOpenExtractsIntoTempDir(t *testing.T) {
	u, err := fmu.Open(fakeArchive(t, nil), "")
	require.NoError(t, err)
	dir := u.Dir

	lib, err := u.LibraryPath(true)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "binaries", fmu.Platform(), stubunit.ModelIdentifier+fmu.LibraryExt()), lib)

	loc, err := u.ResourceLocation()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(loc, "file:///"), loc)
	require.True(t, strings.HasSuffix(loc, "/resources"), loc)

	data, err := os.ReadFile(filepath.Join(dir, "resources", "data.txt"))
	require.NoError(t, err)
	require.Equal(t, "data", string(data))

	require.NoError(t, u.Close())
	_, err = os.Stat(dir)
	require.True(t, os.IsNotExist(err))
}

func TestOpenIntoGivenDirKeepsIt(t *testing.T) {
	dest := t.TempDir()
	u, err := fmu.Open(fakeArchive(t, nil), dest)
	require.NoError(t, err)
	require.Equal(t, dest, u.Dir)
	require.NoError(t, u.Close())
	_, err = os.Stat(filepath.Join(dest, "modelDescription.xml"))
	require.NoError(t, err)

	loaded, err := fmu.Load(dest)
	require.NoError(t, err)
	require.Equal(t, stubunit.GUID, loaded.Description.GUID)
}

func TestOpenRejectsZipSlip(t *testing.T) {
	dest := t.TempDir()
	_, err := fmu.Open(fakeArchive(t, map[string][]byte{"../evil.txt": []byte("x")}), dest)
	require.ErrorIs(t, err, fmu.ErrUnsafePath)
	_, statErr := os.Stat(filepath.Join(filepath.Dir(dest), "evil.txt"))
	require.True(t, os.IsNotExist(statErr))
}

func TestOpenErrors(t *testing.T) {
	_, err := fmu.Open(filepath.Join(t.TempDir(), "missing.fmu"), "")
	require.ErrorIs(t, err, fmu.ErrArchive)

	noDesc := stubunit.WriteArchive(t, map[string][]byte{"resources/a": []byte("a")})
	_, err = fmu.Open(noDesc, "")
	require.ErrorIs(t, err, fmu.ErrModelDescription)

	noBinary := stubunit.WriteArchive(t, map[string][]byte{"modelDescription.xml": []byte(stubunit.ModelDescription)})
	u, err := fmu.Open(noBinary, "")
	require.NoError(t, err)
	defer u.Close()
	_, err = u.LibraryPath(true)
	require.ErrorIs(t, err, fmu.ErrNoBinary)
}

func TestPlatform(t *testing.T) {
	p := fmu.Platform()
	require.True(t, strings.HasSuffix(p, "64") || strings.HasSuffix(p, "32"), p)
}
