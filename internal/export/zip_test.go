package export

import (
	"archive/zip"
	"io"
	"path/filepath"
	"testing"
)

func TestWriteZip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "export.zip")

	files := []File{
		{Name: "records.csv", Body: []byte("date,kind,category,description,amount\n")},
		{Name: "report.md", Body: []byte("# Finance Report\n")},
	}
	if err := WriteZip(path, files); err != nil {
		t.Fatalf("WriteZip: %v", err)
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("opening archive: %v", err)
	}
	defer zr.Close()

	if len(zr.File) != len(files) {
		t.Fatalf("archive has %d entries, want %d", len(zr.File), len(files))
	}
	for i, zf := range zr.File {
		if zf.Name != files[i].Name {
			t.Errorf("entry %d name = %q, want %q", i, zf.Name, files[i].Name)
		}
		rc, err := zf.Open()
		if err != nil {
			t.Fatal(err)
		}
		body, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatal(err)
		}
		if string(body) != string(files[i].Body) {
			t.Errorf("entry %q body = %q, want %q", zf.Name, body, files[i].Body)
		}
	}
}

func TestWriteZip_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.zip")
	if err := WriteZip(path, nil); err != nil {
		t.Fatalf("WriteZip: %v", err)
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("opening archive: %v", err)
	}
	defer zr.Close()

	if len(zr.File) != 0 {
		t.Errorf("archive has %d entries, want 0", len(zr.File))
	}
}
