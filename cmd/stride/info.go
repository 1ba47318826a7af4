package main

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/stride-ml/stride/internal/backend/cpu"
	"github.com/stride-ml/stride/internal/logger"
	"github.com/stride-ml/stride/internal/ops"
	"github.com/stride-ml/stride/internal/tensor"
)

func infoCmd() *cli.Command {
	return &cli.Command{
		Name:  "info",
		Usage: "Show host capabilities and registered kernels",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log := logger.FromContext(ctx)

			fmt.Printf("platform:     %s/%s\n", runtime.GOOS, runtime.GOARCH)
			fmt.Printf("cpus:         %d\n", runtime.NumCPU())

			features := cpu.Features()
			if len(features) == 0 {
				fmt.Println("simd:         none detected")
			} else {
				fmt.Printf("simd:         %s\n", strings.Join(features, ", "))
			}

			fmt.Printf("webgpu:       %s\n", gpuStatus())

			tbl := ops.Table()
			log.Debug("default table built", "kernels", tbl.Len())

			fmt.Printf("kernels:      %d registered\n", tbl.Len())
			counts := map[tensor.Device]int{}
			for _, op := range tbl.Ops() {
				for _, d := range tbl.Devices(op) {
					counts[d]++
				}
			}
			for _, d := range []tensor.Device{tensor.CPU, tensor.CUDA, tensor.WebGPU} {
				if counts[d] > 0 {
					fmt.Printf("  %-10s  %d ops\n", d.String(), counts[d])
				}
			}
			return nil
		},
	}
}
