package main

import (
	"fmt"

	"market-viewer/src/config"
	"market-viewer/src/data_source/brsapi"
	"market-viewer/src/format"
	"market-viewer/src/grpc_control"
	"market-viewer/src/logger"
	"market-viewer/src/network"
	"market-viewer/src/poller"
	"market-viewer/src/server"
)

// App holds the wired components.
type App struct {
	Controller *poller.Controller
	HTTP       *server.FastAPIServer
	GRPC       *grpc_control.Server
}

// -----------------------------------------------------------------------------

// setupApp builds every component from config. Nothing is started here.
func setupApp(conf *config.Config, appLogger *logger.Logger) (*App, error) {
	networkManager, err := network.NewNetworkManager(conf.MConfig, appLogger.Named("NetworkManager"))
	if err != nil {
		return nil, fmt.Errorf("network: %w", err)
	}

	source := brsapi.NewBrsAPISource(conf.MConfig, networkManager, appLogger.Named("BrsAPI"))

	controller := poller.New(poller.Config{
		Interval:     conf.UpdateInterval(),
		FetchTimeout: conf.RequestTimeout(),
	}, source, appLogger.Named("Poller"))

	formatter, err := format.NewFormatter(conf.Presentation.Locale)
	if err != nil {
		return nil, fmt.Errorf("formatter: %w", err)
	}

	httpServer := server.NewFastAPIServer(conf, controller, formatter, appLogger.Named("FastAPIServer"))

	controlService := grpc_control.NewControlService(controller, formatter, appLogger.Named("ControlService"))
	grpcServer := grpc_control.NewServer(conf.GrpcHost, conf.GrpcPort, controlService, appLogger.Named("gRPC"))

	return &App{
		Controller: controller,
		HTTP:       httpServer,
		GRPC:       grpcServer,
	}, nil
}
