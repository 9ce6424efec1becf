package vector

import (
	"encoding/json"
	"math"
	"testing"
)

func sameVector(a Vector2, b Vector2) bool {
	return b.Sub(a).IsNull()
}

func TestRotate(t *testing.T) {
	right := MakeVector2(1, 0)

	quarter := right.Rotate(math.Pi / 2)
	if !sameVector(quarter, MakeVector2(0, 1)) {
		t.Fatal("a quarter turn should map x onto y, got", quarter.String())
	}

	back := right.Rotate(-math.Pi / 2)
	if !sameVector(back, MakeVector2(0, -1)) {
		t.Fatal("a negative angle should rotate clockwise, got", back.String())
	}

	full := right.Rotate(math.Pi).Rotate(math.Pi)
	if !sameVector(full, right) {
		t.Fatal("two half turns should be the identity, got", full.String())
	}
}

func TestRotatePreservesMagnitude(t *testing.T) {
	v := MakeVector2(3, 4)

	rotated := v.Rotate(0.7)
	if math.Abs(rotated.Mag()-5) > 1e-9 {
		t.Fatal("rotation should preserve magnitude, got", rotated.Mag())
	}
}

func TestLimit(t *testing.T) {
	long := MakeVector2(3, 4)
	if math.Abs(long.Limit(1).Mag()-1) > 1e-9 {
		t.Fatal("limit should clamp a long vector to the given magnitude")
	}

	short := MakeVector2(0.3, 0.4)
	if !sameVector(short.Limit(1), short) {
		t.Fatal("limit should leave a short vector untouched")
	}
}

func TestJSONPairEncoding(t *testing.T) {
	var decoded Vector2
	if err := json.Unmarshal([]byte(`[1.5, -2.25]`), &decoded); err != nil {
		t.Fatal("an [x, y] pair should decode:", err)
	}
	if !sameVector(decoded, MakeVector2(1.5, -2.25)) {
		t.Fatal("decoded vector should carry the pair's values, got", decoded.String())
	}

	encoded, err := json.Marshal(MakeVector2(1.5, -2.25))
	if err != nil {
		t.Fatal("vector should encode:", err)
	}

	var roundtripped Vector2
	if err := json.Unmarshal(encoded, &roundtripped); err != nil {
		t.Fatal("encoded vector should decode back:", err)
	}
	if !sameVector(roundtripped, decoded) {
		t.Fatal("encoding should round-trip, got", roundtripped.String())
	}

	if err := json.Unmarshal([]byte(`[1, 2, 3]`), &decoded); err == nil {
		t.Fatal("a triplet should be rejected")
	}
}
