package main

import (
	"fmt"
	"os"

	"dsu_tool/pkg/errorutil"
	"dsu_tool/pkg/logutil"

	"github.com/spf13/cobra"
)

const TOOL_VERSION = "1.0.0+20260320"

func main() {
	var rootCmd = &cobra.Command{
		Use:   "dsuplay",
		Short: fmt.Sprintf("Dsuplay v%s 是并查集库的演示工具，支持 cluster 等子命令", TOOL_VERSION),
	}

	rootCmd.AddCommand(clusterCmd())

	var logFile string
	var logLevel string

	// 定义全局flag(屁股后面带P的函数才支持短选项)
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "e", "WARN", "日志等级(DEBUG/INFO/WARN/ERROR)")
	rootCmd.PersistentFlags().StringVarP(&logFile, "log-file", "l", "dsuplay.log", "日志文件名(stdout 表示标准输出)")
	// 阻止 Cobra 在命令参数错误时输出帮助
	rootCmd.SilenceUsage = true
	// 阻止Cobra自动打印RunE返回的错误内容
	rootCmd.SilenceErrors = true

	// PersistentPreRunE 会在命令解析完成、flag 值填充后执行
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level, ok := logutil.LOG_LEVELS[logLevel]
		if !ok {
			return errorutil.NewExitErrorWithMessage(
				errorutil.CodeInvalidUsage, "未知的日志等级: "+logLevel, nil)
		}
		logutil.InitLogger(logFile, level)
		return nil
	}

	if err := rootCmd.Execute(); err != nil {
		logutil.Error("命令执行失败: %v", err)
		if msg := errorutil.UserMessage(err); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		logutil.CloseLogger()
		os.Exit(errorutil.ExitCodeFromError(err))
	}

	// 不要用defer，因为defer是在函数返回前执行的，而不是os.Exit()执行前执行
	logutil.CloseLogger()
	os.Exit(0)
}
