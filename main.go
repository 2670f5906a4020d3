package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/gonewx/burst/pkg/app"
	"github.com/gonewx/burst/pkg/config"
)

var (
	flagVerbose    bool
	flagTheme      string
	flagFullscreen bool
)

var rootCmd = &cobra.Command{
	Use:   "burst",
	Short: "文字爆炸输入框与可拖拽阈值标记演示",
	Long: `burst - 交互控件演示程序

搜索栏里输入文字后按回车，文字会被逐像素采样成粒子散开消失；
图表上的阈值标记线可以抓住两端手柄上下拖拽，结果会被持久化。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.NewApp(app.Config{
			Verbose:    flagVerbose,
			Theme:      flagTheme,
			Fullscreen: flagFullscreen,
		})
		if err != nil {
			return fmt.Errorf("初始化失败: %w", err)
		}

		ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
		ebiten.SetWindowTitle("burst")

		if err := ebiten.RunGame(application); err != nil {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "启用详细日志输出")
	rootCmd.Flags().StringVar(&flagTheme, "theme", "", "主题 (light/dark/system)，默认使用保存的设置")
	rootCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "启动时进入全屏")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("[Main] %v", err)
		os.Exit(1)
	}
}
