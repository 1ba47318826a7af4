package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"

	"github.com/stride-ml/stride/internal/ops"
)

type opInfo struct {
	Op      string   `json:"op"`
	Devices []string `json:"devices"`
}

func opsCmd() *cli.Command {
	return &cli.Command{
		Name:  "ops",
		Usage: "List registered operations and the devices serving them",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "emit machine-readable output",
				Destination: &asJSON,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			tbl := ops.Table()

			infos := make([]opInfo, 0, len(tbl.Ops()))
			for _, op := range tbl.Ops() {
				devices := tbl.Devices(op)
				names := make([]string, len(devices))
				for i, d := range devices {
					names[i] = d.String()
				}
				infos = append(infos, opInfo{Op: string(op), Devices: names})
			}

			if asJSON {
				out, err := json.MarshalIndent(infos, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(out))
				return nil
			}

			for _, info := range infos {
				fmt.Printf("%-14s %s\n", info.Op, strings.Join(info.Devices, ", "))
			}
			fmt.Printf("\n%d operation(s)\n", len(infos))
			return nil
		},
	}
}
