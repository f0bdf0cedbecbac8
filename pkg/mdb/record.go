package mdb

import "bytes"

// 记录的二进制布局：无文件头、无长度前缀，按固定宽度块顺序排列。
// 偏移 0 处为 name（49 字节 + 1 字节终止符，NUL 填充），
// 偏移 50 处为 message（199 字节 + 1 字节终止符，NUL 填充）。
const (
	MaxNameLen    = 49
	MaxMessageLen = 199

	nameFieldSize    = MaxNameLen + 1
	messageFieldSize = MaxMessageLen + 1

	// RecordSize 单条记录在文件中占用的字节数
	RecordSize = nameFieldSize + messageFieldSize
)

// Record 一条定宽的 name/message 记录，加载后不可变
type Record struct {
	Name    string
	Message string
}

// DecodeRecord 从一个完整的 250 字节块解码记录。
// block 长度必须恰好为 RecordSize，由调用方保证。
func DecodeRecord(block []byte) Record {
	return Record{
		Name:    cstring(block[:nameFieldSize]),
		Message: cstring(block[nameFieldSize:RecordSize]),
	}
}

// EncodeRecord 编码为 250 字节块，超长字段截断到容量上限
func EncodeRecord(name, message string) []byte {
	if len(name) > MaxNameLen {
		name = name[:MaxNameLen]
	}
	if len(message) > MaxMessageLen {
		message = message[:MaxMessageLen]
	}

	block := make([]byte, RecordSize)
	copy(block[:MaxNameLen], name)
	copy(block[nameFieldSize:nameFieldSize+MaxMessageLen], message)
	return block
}

// cstring 取 NUL 终止符之前的内容；没有终止符时取整个字段
func cstring(field []byte) string {
	if i := bytes.IndexByte(field, 0); i >= 0 {
		field = field[:i]
	}
	return string(field)
}
