package assetlib

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/assetctl/cli/internal/assetlib/config"
	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
)

// Version of the client, reported by --version.
const Version = "1.0.0"

/*
InitCommand
Interactively create (or overwrite) the persisted configuration. Asks
for the workspace identifier, the credential string, the log file and
the log verbosity, then writes them to the config path.
*/
func InitCommand(cfg *config.RootConfig) error {
	fmt.Println()
	// In case a config file is already in place ask the user before
	// overwriting it. If the answer is "no" we need to cancel everything
	if cfg.Exists() {
		fmt.Printf("A configuration file already exists at '%s'.\n", cfg.Path)
		prompt := promptui.Prompt{
			Label:     "Do you want to overwrite it",
			IsConfirm: true,
		}

		_, err := prompt.Run()

		if err != nil {
			fmt.Println("Init was cancelled!")
			return nil
		}
	}

	prompt := promptui.Prompt{
		Label: "Workspace id",
		Validate: func(input string) error {
			if input == "" {
				return errors.New("the workspace id cannot be empty")
			}
			return nil
		},
	}
	workspaceID, err := prompt.Run()
	if err != nil {
		return err
	}

	fmt.Println("The credential string has the form " +
		"'user@example.com:api_token'.")
	prompt = promptui.Prompt{
		Label: "Credential string",
		Mask:  '*',
		Validate: func(input string) error {
			if input == "" {
				return errors.New("the credential string cannot be empty")
			}
			return nil
		},
	}
	authString, err := prompt.Run()
	if err != nil {
		return err
	}

	prompt = promptui.Prompt{
		Label:   "Log file (leave empty for console only)",
		Default: "",
	}
	logFile, err := prompt.Run()
	if err != nil {
		return err
	}

	prompt = promptui.Prompt{
		Label:   "Log verbosity (0=errors .. 4=everything)",
		Default: "2",
		Validate: func(input string) error {
			level, err := strconv.Atoi(input)
			if err != nil || level < 0 || level > 4 {
				return errors.New("the verbosity must be a number from 0 to 4")
			}
			return nil
		},
	}
	logLevelInput, err := prompt.Run()
	if err != nil {
		return err
	}
	logLevel, err := strconv.Atoi(logLevelInput)
	if err != nil {
		return err
	}

	cfg.WorkspaceID = workspaceID
	cfg.AuthString = authString
	cfg.LogFile = logFile
	cfg.LogLevel = logLevel

	err = cfg.Save()
	if err != nil {
		return fmt.Errorf("we could not save the configuration: %w", err)
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Println(green(fmt.Sprintf(
		"Successful creation of '%s' file", cfg.Path)))
	return nil
}
