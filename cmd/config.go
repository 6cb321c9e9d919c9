package cmd

import (
	"fmt"

	"github.com/nodewee/screenshot-namer/pkg/config"

	"github.com/spf13/cobra"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage tool path configuration",
	Long: `Manage external tool path configuration.

Configuration is stored in ~/.screenshot-namer/config.json. Only tool
paths are persisted; runtime settings (model, scratch dir, naming rules)
come from flags and environment variables.

Examples:
  screenshot-namer config list
  screenshot-namer config get ocr_tool_path
  screenshot-namer config set agent_path /usr/local/bin/claude`,
}

// configListCmd represents the 'config list' command
var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tool path settings",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("🛠️  Tool Path Configuration")
		fmt.Println("===========================")

		cfg, err := config.LoadConfig()
		if err != nil {
			fmt.Printf("❌ Error loading configuration: %v\n", err)
			return
		}

		configPath, _ := config.GetConfigFilePath()
		fmt.Printf("📁 Config file: %s\n\n", configPath)
		fmt.Printf("  %-15s = %s\n", "ocr_tool_path", displayValue(cfg.OCRToolPath))
		fmt.Printf("  %-15s = %s\n", "agent_path", displayValue(cfg.AgentPath))
	},
}

// configGetCmd represents the 'config get' command
var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a specific tool path value",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		value, err := config.GetConfigValue(args[0])
		if err != nil {
			fmt.Printf("❌ Error getting config value '%s': %v\n", args[0], err)
			return
		}
		fmt.Printf("📝 %s = %s\n", args[0], value)
	},
}

// configSetCmd represents the 'config set' command
var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a specific tool path value",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := config.SetConfigValue(args[0], args[1]); err != nil {
			fmt.Printf("❌ Error setting config value '%s': %v\n", args[0], err)
			return
		}
		fmt.Printf("✅ Successfully set %s = %s\n", args[0], args[1])
	},
}

// displayValue returns a display-friendly value for empty strings
func displayValue(value string) string {
	if value == "" {
		return "(not set)"
	}
	return value
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
}
