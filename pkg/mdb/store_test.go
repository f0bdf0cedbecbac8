package mdb

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

// writeTestDatabase 把若干条记录写成一个临时数据库文件
func writeTestDatabase(t *testing.T, records [][2]string) string {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "mdb_test")
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	path := filepath.Join(tempDir, "test.mdb")
	var data []byte
	for _, r := range records {
		data = append(data, EncodeRecord(r[0], r[1])...)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadBasic(t *testing.T) {
	path := writeTestDatabase(t, [][2]string{
		{"Ramya", "hi there"},
		{"Alex", "bye now"},
	})

	store, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// 记录数 = 文件大小 / 250
	if store.Len() != 2 {
		t.Fatalf("Expected 2 records, got %d", store.Len())
	}

	if rec := store.Record(0); rec.Name != "Ramya" || rec.Message != "hi there" {
		t.Errorf("Record 0 mismatch: %+v", rec)
	}

	if rec := store.Record(1); rec.Name != "Alex" || rec.Message != "bye now" {
		t.Errorf("Record 1 mismatch: %+v", rec)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	// 0 字节文件是合法的空数据库
	path := writeTestDatabase(t, nil)

	store, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if store.Len() != 0 {
		t.Errorf("Expected empty store, got %d records", store.Len())
	}
}

func TestLoadTruncatedRecord(t *testing.T) {
	path := writeTestDatabase(t, [][2]string{{"Ramya", "hi there"}})

	// 追加不足一条记录的残块
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Write(make([]byte, RecordSize-1)); err != nil {
		t.Fatal(err)
	}
	f.Close()

	store, err := Load(path)
	if !errors.Is(err, ErrCorruptDatabase) {
		t.Fatalf("Expected ErrCorruptDatabase, got %v", err)
	}
	if store != nil {
		t.Error("Expected nil store on corrupt database")
	}
}

func TestLoadMissingFile(t *testing.T) {
	store, err := Load("does-not-exist.mdb")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Expected fs.ErrNotExist, got %v", err)
	}
	if store != nil {
		t.Error("Expected nil store on open failure")
	}
}

func TestRecordRoundTrip(t *testing.T) {
	block := EncodeRecord("Ramya", "hi there")
	if len(block) != RecordSize {
		t.Fatalf("Expected %d byte block, got %d", RecordSize, len(block))
	}

	rec := DecodeRecord(block)
	if rec.Name != "Ramya" {
		t.Errorf("Expected name Ramya, got %q", rec.Name)
	}
	if rec.Message != "hi there" {
		t.Errorf("Expected message 'hi there', got %q", rec.Message)
	}
}

func TestEncodeRecordTruncatesLongFields(t *testing.T) {
	longName := make([]byte, MaxNameLen+10)
	longMsg := make([]byte, MaxMessageLen+10)
	for i := range longName {
		longName[i] = 'n'
	}
	for i := range longMsg {
		longMsg[i] = 'm'
	}

	rec := DecodeRecord(EncodeRecord(string(longName), string(longMsg)))
	if len(rec.Name) != MaxNameLen {
		t.Errorf("Expected name truncated to %d, got %d", MaxNameLen, len(rec.Name))
	}
	if len(rec.Message) != MaxMessageLen {
		t.Errorf("Expected message truncated to %d, got %d", MaxMessageLen, len(rec.Message))
	}
}
