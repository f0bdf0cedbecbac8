package log

import (
	"fmt"
	"log"
	"os"
)

var logger *log.Logger

func init() {
	// 创建带文件名和行号的 Logger；连接日志等诊断信息一律写到 stderr，
	// 不与发给客户端的数据流混在一起
	logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)
}

// Debugging
const Debug = false

func DPrintf(format string, a ...interface{}) {
	if Debug {
		logger.Output(2, fmt.Sprintf(format, a...))
	}
}

func Printf(format string, a ...interface{}) {
	logger.Output(2, fmt.Sprintf(format, a...))
}
