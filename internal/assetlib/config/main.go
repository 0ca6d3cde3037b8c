/*
Package config
Persisted assetctl configuration.

Usage:

    import "github.com/assetctl/cli/internal/assetlib/config"

    cfg, err := config.Load()  // Loads ~/.assetsrc
    if err != nil { ... }

    cfg.WorkspaceID = "XXX"
    cfg.Save()  // Saves changes to disk

The file holds one 'default' ini section with the log sink, log
verbosity (0-4), workspace identifier and credential string. The
values derived from it (token, workspace id, log target) are computed
once per process and treated as read-only afterwards.
*/
package config

import (
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strconv"

	"gopkg.in/ini.v1"
)

const sectionName = "default"

type RootConfig struct {
	Path        string
	LogFile     string
	LogLevel    int
	WorkspaceID string
	AuthString  string
}

func Load() (*RootConfig, error) {
	rootPath, err := GetRootPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(rootPath)
}

func LoadFromPath(path string) (*RootConfig, error) {
	if path == "" {
		return Load()
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &RootConfig{Path: path}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	rootCfg, err := loadFromBytes(data)
	if err != nil {
		return nil, err
	}
	rootCfg.Path = path
	return rootCfg, nil
}

func loadFromBytes(data []byte) (*RootConfig, error) {
	cfg, err := ini.Load(data)
	if err != nil {
		return nil, err
	}

	section := cfg.Section(sectionName)
	result := RootConfig{
		LogFile:     section.Key("log_file").String(),
		LogLevel:    section.Key("log_level").MustInt(0),
		WorkspaceID: section.Key("workspace_id").String(),
		AuthString:  section.Key("auth_string").String(),
	}
	return &result, nil
}

// Exists reports whether the config file is already on disk.
func (rootCfg *RootConfig) Exists() bool {
	if rootCfg.Path == "" {
		return false
	}
	_, err := os.Stat(rootCfg.Path)
	return !os.IsNotExist(err)
}

func (rootCfg *RootConfig) Save() error {
	file, err := os.OpenFile(rootCfg.Path,
		os.O_RDWR|os.O_CREATE|os.O_TRUNC,
		0600)
	if err != nil {
		return err
	}
	defer file.Close()
	return rootCfg.saveToWriter(file)
}

func (rootCfg *RootConfig) saveToWriter(file io.Writer) error {
	cfg := ini.Empty(ini.LoadOptions{})

	section, err := cfg.NewSection(sectionName)
	if err != nil {
		return err
	}

	if rootCfg.LogFile != "" {
		_, err := section.NewKey("log_file", rootCfg.LogFile)
		if err != nil {
			return err
		}
	}

	_, err = section.NewKey("log_level", strconv.Itoa(rootCfg.LogLevel))
	if err != nil {
		return err
	}

	if rootCfg.WorkspaceID != "" {
		_, err := section.NewKey("workspace_id", rootCfg.WorkspaceID)
		if err != nil {
			return err
		}
	}

	if rootCfg.AuthString != "" {
		_, err := section.NewKey("auth_string", rootCfg.AuthString)
		if err != nil {
			return err
		}
	}

	_, err = cfg.WriteTo(file)
	return err
}

func GetRootPath() (string, error) {
	homeDir := os.Getenv("HOME")
	if homeDir == "" {
		usr, err := user.Current()
		if err != nil {
			return "", err
		}
		homeDir = usr.HomeDir
	}
	return filepath.Join(homeDir, ".assetsrc"), nil
}
