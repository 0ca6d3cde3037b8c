package assetctl

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/assetctl/cli/internal/assetlib"
	"github.com/assetctl/cli/internal/assetlib/config"
	"github.com/assetctl/cli/pkg/assetsapi"
	"github.com/urfave/cli/v2"
)

const defaultHost = "https://api.atlassian.com/jsm/assets/workspace"

func getConnection(c *cli.Context) (assetsapi.Connection, error) {
	cfg, err := config.LoadFromPath(c.String("config"))
	if err != nil {
		return assetsapi.Connection{}, err
	}

	workspaceID := c.String("workspace")
	if workspaceID == "" {
		workspaceID = cfg.WorkspaceID
	}
	authString := c.String("auth")
	if authString == "" {
		authString = cfg.AuthString
	}
	if workspaceID == "" || authString == "" {
		return assetsapi.Connection{}, errors.New(
			"could not find a workspace id and/or credential string, " +
				"please run 'assetctl init' or inspect your .assetsrc file",
		)
	}

	client, err := assetlib.GetClient(c.String("cacert"))
	if err != nil {
		return assetsapi.Connection{}, err
	}

	return assetsapi.Connection{
		Host:        c.String("host"),
		WorkspaceID: workspaceID,
		AuthString:  authString,
		Client:      client,
		Logger:      assetlib.NewLogger(cfg),
		Headers: map[string]string{
			"Integration": "assetctl",
		},
	}, nil
}

func Main() {
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Println("Assets client, version=" + c.App.Version)
	}
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Load configuration from `FILE`",
			EnvVars: []string{"ASSETS_CONFIG"},
		},
		&cli.StringFlag{
			Name:    "workspace",
			Aliases: []string{"w"},
			Usage:   "The workspace id to use",
			EnvVars: []string{"ASSETS_WORKSPACE"},
		},
		&cli.StringFlag{
			Name:    "auth",
			Aliases: []string{"a"},
			Usage:   "The credential string to use",
			EnvVars: []string{"ASSETS_AUTH"},
		},
		&cli.StringFlag{
			Name:    "host",
			Aliases: []string{"H"},
			Usage:   "The API hostname",
			Value:   defaultHost,
			EnvVars: []string{"ASSETS_HOST"},
		},
		&cli.StringFlag{
			Name:    "cacert",
			Usage:   "Path to CA certificate bundle file",
			EnvVars: []string{"ASSETS_CACERT"},
		},
	}
	app := &cli.App{
		Version:                assetlib.Version,
		UseShortOptionHandling: true,
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "Create the configuration file interactively.",
				Action: func(c *cli.Context) error {
					cfg, err := config.LoadFromPath(c.String("config"))
					if err != nil {
						return cli.Exit(err, 1)
					}
					err = assetlib.InitCommand(cfg)
					if err != nil {
						return cli.Exit(err, 1)
					}
					return nil
				},
			},
			{
				Name:      "schema",
				Usage:     "assetctl schema <object_type_id>",
				ArgsUsage: "<object_type_id>",
				Action: func(c *cli.Context) error {
					objectTypeID, err := intArg(c, "object_type_id")
					if err != nil {
						return cli.Exit(err, 1)
					}
					api, err := getConnection(c)
					if err != nil {
						return cli.Exit(err, 1)
					}
					arguments := assetlib.SchemaCommandArguments{
						ObjectTypeID: objectTypeID,
					}
					err = assetlib.SchemaCommand(api, &arguments)
					if err != nil {
						return cli.Exit(err, 1)
					}
					return nil
				},
			},
			{
				Name:      "get",
				Usage:     "assetctl get <object_id>",
				ArgsUsage: "<object_id>",
				Action: func(c *cli.Context) error {
					objectID, err := intArg(c, "object_id")
					if err != nil {
						return cli.Exit(err, 1)
					}
					api, err := getConnection(c)
					if err != nil {
						return cli.Exit(err, 1)
					}
					arguments := assetlib.GetCommandArguments{
						ObjectID: objectID,
					}
					err = assetlib.GetCommand(api, &arguments)
					if err != nil {
						return cli.Exit(err, 1)
					}
					return nil
				},
			},
			{
				Name:  "list",
				Usage: "List every object of one type.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "type",
						Usage: "The name of the object type to list",
					},
					&cli.IntFlag{
						Name:  "type-id",
						Usage: "The id of the object type to list",
					},
				},
				Action: func(c *cli.Context) error {
					api, err := getConnection(c)
					if err != nil {
						return cli.Exit(err, 1)
					}
					arguments := assetlib.ListCommandArguments{
						ObjectType:   c.String("type"),
						ObjectTypeID: c.Int("type-id"),
					}
					err = assetlib.ListCommand(api, &arguments)
					if err != nil {
						return cli.Exit(err, 1)
					}
					return nil
				},
			},
			{
				Name:      "search",
				Usage:     "assetctl search <aql>",
				ArgsUsage: "<aql>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return cli.Exit(
							errors.New("exactly one AQL query expected"), 1)
					}
					api, err := getConnection(c)
					if err != nil {
						return cli.Exit(err, 1)
					}
					arguments := assetlib.SearchCommandArguments{
						Query: c.Args().First(),
					}
					err = assetlib.SearchCommand(api, &arguments)
					if err != nil {
						return cli.Exit(err, 1)
					}
					return nil
				},
			},
			{
				Name:  "create",
				Usage: "Create an object from a desired-state description.",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:     "type-id",
						Usage:    "The id of the object type to create",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "set",
						Usage: "The desired object as inline JSON",
					},
					&cli.StringFlag{
						Name:    "file",
						Aliases: []string{"f"},
						Usage:   "Read the desired object from `FILE`",
					},
					&cli.BoolFlag{
						Name: "create-references",
						Usage: "Create stub objects for reference labels " +
							"that don't resolve",
					},
					&cli.IntFlag{
						Name:  "max-depth",
						Usage: "Depth limit for recursive reference creation",
					},
				},
				Action: func(c *cli.Context) error {
					desired, err := assetlib.ParseDesired(
						c.String("set"), c.String("file"))
					if err != nil {
						return cli.Exit(err, 1)
					}
					api, err := getConnection(c)
					if err != nil {
						return cli.Exit(err, 1)
					}
					arguments := assetlib.CreateCommandArguments{
						ObjectTypeID:     c.Int("type-id"),
						Desired:          desired,
						CreateReferences: c.Bool("create-references"),
						MaxDepth:         c.Int("max-depth"),
					}
					err = assetlib.CreateCommand(api, &arguments)
					if err != nil {
						return cli.Exit(err, 1)
					}
					return nil
				},
			},
			{
				Name:      "update",
				Usage:     "assetctl update [options] <object_id>",
				ArgsUsage: "<object_id>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "set",
						Usage: "The desired object as inline JSON",
					},
					&cli.StringFlag{
						Name:    "file",
						Aliases: []string{"f"},
						Usage:   "Read the desired object from `FILE`",
					},
					&cli.BoolFlag{
						Name: "create-references",
						Usage: "Create stub objects for reference labels " +
							"that don't resolve",
					},
					&cli.IntFlag{
						Name:  "max-depth",
						Usage: "Depth limit for recursive reference creation",
					},
				},
				Action: func(c *cli.Context) error {
					objectID, err := intArg(c, "object_id")
					if err != nil {
						return cli.Exit(err, 1)
					}
					desired, err := assetlib.ParseDesired(
						c.String("set"), c.String("file"))
					if err != nil {
						return cli.Exit(err, 1)
					}
					api, err := getConnection(c)
					if err != nil {
						return cli.Exit(err, 1)
					}
					arguments := assetlib.UpdateCommandArguments{
						ObjectID:         objectID,
						Desired:          desired,
						CreateReferences: c.Bool("create-references"),
						MaxDepth:         c.Int("max-depth"),
					}
					err = assetlib.UpdateCommand(api, &arguments)
					if err != nil {
						return cli.Exit(err, 1)
					}
					return nil
				},
			},
			{
				Name:      "delete",
				Usage:     "assetctl delete <object_id>",
				ArgsUsage: "<object_id>",
				Action: func(c *cli.Context) error {
					objectID, err := intArg(c, "object_id")
					if err != nil {
						return cli.Exit(err, 1)
					}
					api, err := getConnection(c)
					if err != nil {
						return cli.Exit(err, 1)
					}
					arguments := assetlib.DeleteCommandArguments{
						ObjectID: objectID,
					}
					err = assetlib.DeleteCommand(api, &arguments)
					if err != nil {
						return cli.Exit(err, 1)
					}
					return nil
				},
			},
		},
		Flags: flags,
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func intArg(c *cli.Context, name string) (int, error) {
	if c.NArg() != 1 {
		return 0, fmt.Errorf("exactly one %s expected", name)
	}
	var value int
	_, err := fmt.Sscanf(c.Args().First(), "%d", &value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s '%s'", name, c.Args().First())
	}
	return value, nil
}
