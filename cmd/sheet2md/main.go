// Package main provides the CLI entry point for sheet2md.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ukaji3/sheet2md/pkg/sheet2md"
)

// confirmation is printed once the document has been written.
const confirmation = "转换完成，Markdown 文件保存为 %s\n"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "sheet2md [input.xlsx]",
		Short: "Convert every sheet of an Excel workbook into Markdown tables",
		Long: `sheet2md reads every worksheet of an Excel workbook and writes each one
as a Markdown table, under a level-2 heading, into a single Markdown file.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, args)
		},
	}

	flags := rootCmd.Flags()
	flags.String("config", "", "config file (default: ./sheet2md.yaml)")
	flags.StringP("output", "o", sheet2md.DefaultOutputPath, "Output Markdown file path")
	flags.String("heading-prefix", sheet2md.DefaultHeadingPrefix, "Text placed before the sheet name in each heading")
	flags.Bool("verify", false, "Re-parse the document and check its structure before writing")

	for _, key := range []string{"output", "heading-prefix", "verify"} {
		_ = v.BindPFlag(key, flags.Lookup(key))
	}

	return rootCmd
}

func initConfig(cmd *cobra.Command, v *viper.Viper) error {
	v.SetDefault("input", sheet2md.DefaultInputPath)
	v.SetDefault("output", sheet2md.DefaultOutputPath)
	v.SetDefault("heading-prefix", sheet2md.DefaultHeadingPrefix)

	v.SetEnvPrefix("SHEET2MD")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cfgFile, _ := cmd.Flags().GetString("config")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("sheet2md")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", v.ConfigFileUsed())
	return nil
}

func run(cmd *cobra.Command, v *viper.Viper, args []string) error {
	opts := sheet2md.DefaultOptions()
	opts.InputPath = v.GetString("input")
	if len(args) == 1 {
		opts.InputPath = args[0]
	}
	opts.OutputPath = v.GetString("output")
	prefix := v.GetString("heading-prefix")
	opts.HeadingPrefix = &prefix
	opts.Verify = v.GetBool("verify")

	result, err := sheet2md.Convert(opts)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), confirmation, result.OutputPath)
	return nil
}
