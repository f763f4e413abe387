package fspath

import (
	"io"
	"os"

	"github.com/northbound-labs/waitkit/waiterrors"
)

// Load reads up to max bytes (0 means unbounded). With Stdio, an empty
// name or "-" reads from stdin. With MayFail, any error returns an empty
// result instead of propagating.
func (p Path) Load(max int64, flags Flags) ([]byte, error) {
	data, err := p.load(max, flags)
	if err != nil && flags.Has(MayFail) {
		return nil, nil
	}
	return data, err
}

func (p Path) load(max int64, flags Flags) ([]byte, error) {
	var f *os.File
	if flags.Has(Stdio) && (p.native == "" || p.native == "-") {
		f = os.Stdin
	} else {
		opened, err := os.Open(p.native)
		if err != nil {
			return nil, waiterrors.Wrap(waiterrors.Io, err, "fspath: open failed")
		}
		defer opened.Close()
		f = opened
	}
	var r io.Reader = f
	if max > 0 {
		r = io.LimitReader(f, max)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, waiterrors.Wrap(waiterrors.Io, err, "fspath: read failed")
	}
	return data, nil
}

// Save writes data to the path. AppendData and the default overwrite
// behaviour are mutually exclusive. With Stdio, an empty name or "-"
// writes to stdout.
func (p Path) Save(data []byte, flags Flags) error {
	var f *os.File
	if flags.Has(Stdio) && (p.native == "" || p.native == "-") {
		f = os.Stdout
	} else {
		mode := os.O_WRONLY | os.O_CREATE
		if flags.Has(AppendData) {
			mode |= os.O_APPEND
		} else {
			mode |= os.O_TRUNC
		}
		opened, err := os.OpenFile(p.native, mode, 0o644)
		if err != nil {
			return waiterrors.Wrap(waiterrors.Io, err, "fspath: open for write failed")
		}
		defer opened.Close()
		f = opened
	}
	if _, err := f.Write(data); err != nil {
		return waiterrors.Wrap(waiterrors.Io, err, "fspath: write failed")
	}
	return nil
}
