// Copyright © 2023 Geo Web Project
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/geo-web-project/cadastred/internal/apiserver"
	"github.com/geo-web-project/cadastred/internal/config"
	"github.com/geo-web-project/cadastred/internal/i18n"
	"github.com/geo-web-project/cadastred/internal/log"
	"github.com/geo-web-project/cadastred/internal/orchestrator"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "cadastred",
	Short: "Cadastred is the Geo Web cadastre node",
	Long: "Cadastred resolves the parcels of the Geo Web registry into their current " +
		"licensing status, and tracks the pinning of parcel media content",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

// newOrchestrator is replaced in unit tests
var newOrchestrator = orchestrator.NewOrchestrator

// newAPIServer is replaced in unit tests
var newAPIServer = apiserver.NewAPIServer

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "file", "f", "", "config file")
}

// Execute is called by the main method of the package
func Execute() error {
	return rootCmd.Execute()
}

func run() error {

	// Read the configuration first of all
	err := config.ReadConfig(cfgFile)

	// Setup logging after reading config (even if failed), to output header correctly
	ctx, cancelCtx := context.WithCancel(context.Background())
	defer cancelCtx()
	ctx = log.WithLogger(ctx, logrus.WithField("pid", os.Getpid()))
	log.SetLevel(config.GetString(config.LogLevel))
	log.SetFormatting(log.Formatting{
		DisableColor:    !config.GetBool(config.LogColor),
		TimestampFormat: config.GetString(config.LogTimeFormat),
		UTC:             config.GetBool(config.LogUTC),
	})
	log.L(ctx).Infof("Cadastred")
	log.L(ctx).Infof("© Copyright 2023 Geo Web Project")

	// Deferred error return from reading config
	if err != nil {
		return i18n.WrapError(ctx, err, i18n.MsgConfigFailed, cfgFile)
	}

	debugPort := config.GetInt(config.DebugPort)
	if debugPort >= 0 {
		go func() {
			log.L(ctx).Debugf("Debug HTTP endpoint listening on localhost:%d: %s", debugPort, http.ListenAndServe(fmt.Sprintf("localhost:%d", debugPort), nil))
		}()
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.L(ctx).Infof("Shutting down on %s signal", sig)
		cancelCtx()
	}()

	o := newOrchestrator()
	if err = o.Init(ctx); err != nil {
		return err
	}
	if err = o.Start(); err != nil {
		return err
	}
	defer o.Close()

	return newAPIServer().Serve(ctx, o)
}
