package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"mdb/pkg/mdb"
)

// mdbgen 从文本生成定宽记录数据库文件。
// 输入每行形如 "name: message"，超长字段截断并告警。

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <input_text_file|-> <output_mdb_file>\n", os.Args[0])
		os.Exit(1)
	}

	input := os.Stdin
	if os.Args[1] != "-" {
		f, err := os.Open(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open input: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		input = f
	}

	out, err := os.Create(os.Args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create output: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	count := 0
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		name, message, ok := strings.Cut(line, ":")
		if !ok {
			fmt.Fprintf(os.Stderr, "skipping malformed line %d: %q\n", count+1, line)
			continue
		}
		name = strings.TrimSpace(name)
		message = strings.TrimSpace(message)

		if len(name) > mdb.MaxNameLen {
			fmt.Fprintf(os.Stderr, "warning: name truncated to %d bytes: %q\n", mdb.MaxNameLen, name)
		}
		if len(message) > mdb.MaxMessageLen {
			fmt.Fprintf(os.Stderr, "warning: message truncated to %d bytes: %q\n", mdb.MaxMessageLen, message)
		}

		if _, err := out.Write(mdb.EncodeRecord(name, message)); err != nil {
			fmt.Fprintf(os.Stderr, "write failed: %v\n", err)
			os.Exit(1)
		}
		count++
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "read failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %d records (%d bytes)\n", count, count*mdb.RecordSize)
}
