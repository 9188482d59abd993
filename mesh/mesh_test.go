package mesh

import (
	"bytes"
	"encoding/binary"
	"math"
	"testing"
)

func putFloat32(buf *bytes.Buffer, f float32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], math.Float32bits(f))
	buf.Write(b[:])
}

func TestLoad(t *testing.T) {
	var buf bytes.Buffer
	// one vertex
	for _, f := range []float32{1, 2, 3, 0, 0, 1, 0.5, 0.25, 0.5, 0.25} {
		putFloat32(&buf, f)
	}
	// one face
	var idx [6]byte
	binary.LittleEndian.PutUint16(idx[0:2], 0)
	binary.LittleEndian.PutUint16(idx[2:4], 1)
	binary.LittleEndian.PutUint16(idx[4:6], 2)
	buf.Write(idx[:])

	data := buf.Bytes()
	m, err := Load(bytes.NewReader(data), int64(len(data)), 1, 1)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(m.Vertices) != 1 || len(m.Faces) != 1 {
		t.Fatalf("got %d vertices, %d faces", len(m.Vertices), len(m.Faces))
	}
	v := m.Vertices[0]
	if v.P != [3]float32{1, 2, 3} {
		t.Errorf("P = %v", v.P)
	}
	if v.N != [3]float32{0, 0, 1} {
		t.Errorf("N = %v", v.N)
	}
	if v.U != 0.5 || v.V != 0.25 || v.U2 != 0.5 || v.V2 != 0.25 {
		t.Errorf("UV = %v %v %v %v", v.U, v.V, v.U2, v.V2)
	}
	f := m.Faces[0]
	if f.A != 0 || f.B != 1 || f.C != 2 {
		t.Errorf("Face = %+v", f)
	}
}

func TestLoad_SizeMismatch(t *testing.T) {
	if _, err := Load(bytes.NewReader(nil), 0, 1, 0); err == nil {
		t.Fatal("expected an error for a size/count mismatch")
	}
}
