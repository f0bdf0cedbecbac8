package main

import (
	"fmt"
	"os"

	"mdb/pkg/mdb"
)

// mdbdump 按序号打印数据库文件中的全部记录

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <mdb_file>\n", os.Args[0])
		os.Exit(1)
	}

	store, err := mdb.Load(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load database: %v\n", err)
		os.Exit(1)
	}

	for i := 0; i < store.Len(); i++ {
		rec := store.Record(i)
		fmt.Printf("%4d: {%s} said {%s}\n", i+1, rec.Name, rec.Message)
	}
	fmt.Printf("total %d records\n", store.Len())
}
