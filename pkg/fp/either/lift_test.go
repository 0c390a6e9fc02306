package either

import (
	"encoding/json"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/ib-77/fpbox/pkg/fp"
)

func TestFromNullable(t *testing.T) {
	t.Parallel()

	var nilPtr *int
	var nilMap map[string]string
	var nilIface any

	if !FromNullable(nilPtr).IsLeft() || !FromNullable(nilMap).IsLeft() || !FromNullable(nilIface).IsLeft() {
		t.Fatalf("nil pointer, map and interface must lift to Left")
	}

	n := 5
	expectEqual(t, Right[*int](&n), FromNullable(&n))
	expectEqual(t, Right[string](""), FromNullable(""))
	expectEqual(t, Right[int](0), FromNullable(0))
}

func TestFromNullable_LeftCarriesValue(t *testing.T) {
	t.Parallel()

	var p *string
	l, ok := FromNullable(p).LeftValue()
	if !ok || l != nil {
		t.Fatalf("expected Left(nil), got %v ok=%v", l, ok)
	}
}

func TestFromPtr(t *testing.T) {
	t.Parallel()

	s := "Brannan St"
	expectEqual(t, Right[error](s), FromPtr(&s))

	if _, err := ToValues(FromPtr[string](nil)); !errors.Is(err, ErrAbsent) {
		t.Fatalf("expected ErrAbsent, got %v", err)
	}
}

func TestFromOK(t *testing.T) {
	t.Parallel()

	colors := map[string]string{"red": "#ff4444"}

	red, ok := colors["red"]
	expectEqual(t, Right[string]("#ff4444"), FromOK(red, ok))

	green, ok := colors["green"]
	if !FromOK(green, ok).IsLeft() {
		t.Fatalf("missing key must lift to Left")
	}
}

func TestTryCatch_Success(t *testing.T) {
	t.Parallel()

	expectEqual(t, Right[error](7), TryCatch(func() (int, error) { return 7, nil }))
}

func TestTryCatch_ReturnedError(t *testing.T) {
	t.Parallel()

	got := TryCatch(func() ([]byte, error) { return nil, fs.ErrNotExist })

	l, ok := got.LeftValue()
	if !ok || !errors.Is(l, fs.ErrNotExist) {
		t.Fatalf("expected Left(ErrNotExist), got %v", got)
	}
}

func TestTryCatch_PanicWithError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	got := TryCatch(func() (int, error) { panic(boom) })

	if l, ok := got.LeftValue(); !ok || l != boom {
		t.Fatalf("expected Left(boom), got %v", got)
	}
}

func TestTryCatch_PanicWithValue(t *testing.T) {
	t.Parallel()

	got := Attempt(func() int {
		var m map[string]int
		m["x"] = 1
		return 0
	})
	if !got.IsLeft() {
		t.Fatalf("runtime panic must lift to Left")
	}

	_, err := ToValues(Attempt(func() int { panic("bad input") }))
	if !errors.Is(err, fp.ErrPanic) || !strings.Contains(err.Error(), "bad input") {
		t.Fatalf("expected wrapped ErrPanic mentioning the value, got %v", err)
	}
}

func TestTryCatch_ChainParse(t *testing.T) {
	t.Parallel()

	type config struct {
		Port int `json:"port"`
	}
	parse := func(raw []byte) Either[error, config] {
		return TryCatch(func() (config, error) {
			var c config
			err := json.Unmarshal(raw, &c)
			return c, err
		})
	}

	port := func(raw []byte) int {
		return Fold(
			Chain(TryCatch(func() ([]byte, error) { return raw, nil }), parse),
			func(error) int { return 3000 },
			func(c config) int { return c.Port })
	}

	expectEqual(t, 3000, port([]byte("asd")))
	expectEqual(t, 4000, port([]byte(`{"port":4000}`)))
}
