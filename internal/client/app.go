// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-sync-conflicts/internal/logger"
	"github.com/MKhiriev/go-sync-conflicts/internal/service"
	"github.com/MKhiriev/go-sync-conflicts/internal/workers"
	"github.com/MKhiriev/go-sync-conflicts/models"
)

// Commands accepted by [NewApp].
const (
	CommandSubmit  = "submit"
	CommandResolve = "resolve"
)

// StdinPath makes a command read its input from the app input stream.
const StdinPath = "-"

var _ Client = (*App)(nil)

// App executes a single client command.
type App struct {
	services *service.ClientServices
	workers  *workers.Workers

	command string
	path    string

	in     io.Reader
	out    io.Writer
	logger *logger.Logger
}

// SubmitResult is the outcome of one submitted operation.
type SubmitResult struct {
	OperationID   string        `json:"operationId,omitempty"`
	OperationName string        `json:"operationName,omitempty"`
	ReturnType    string        `json:"returnType"`
	Record        models.Record `json:"record,omitempty"`
	// Conflicted is set when the conflict could not be resolved
	// automatically and the record was not resubmitted.
	Conflicted bool   `json:"conflicted,omitempty"`
	Error      string `json:"error,omitempty"`
}

// NewApp parses args (command followed by the input path) and returns an
// app ready to run. in is read when the path is [StdinPath]; results are
// written to out.
func NewApp(
	services *service.ClientServices,
	ws *workers.Workers,
	args []string,
	in io.Reader,
	out io.Writer,
	log *logger.Logger,
) (*App, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: command (%s or %s)", ErrMissingArgument, CommandSubmit, CommandResolve)
	}

	command := args[0]
	switch command {
	case CommandSubmit, CommandResolve:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}

	if len(args) < 2 || args[1] == "" {
		return nil, fmt.Errorf("%w: input file for %s", ErrMissingArgument, command)
	}

	if ws == nil {
		ws = workers.New()
	}

	return &App{
		services: services,
		workers:  ws,
		command:  command,
		path:     args[1],
		in:       in,
		out:      out,
		logger:   log,
	}, nil
}

// Run runs the maintenance workers and then the command. A worker failure
// is logged and does not prevent the command from running.
func (a *App) Run(ctx context.Context) error {
	if err := a.workers.Run(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		a.logger.Warn().Err(err).Str("func", "App.Run").Msg("maintenance workers failed")
	}

	switch a.command {
	case CommandSubmit:
		return a.submit(ctx)
	default:
		return a.resolve(ctx)
	}
}

func (a *App) submit(ctx context.Context) error {
	ops, err := readInput[models.Operation](a.path, a.in)
	if err != nil {
		return err
	}

	results := make([]SubmitResult, 0, len(ops))
	failed := 0
	for _, op := range ops {
		if err = ctx.Err(); err != nil {
			return err
		}

		// assigned here so the id is reported and reused on retry
		op.ID = service.OperationID(op)
		res := SubmitResult{
			OperationID:   op.ID,
			OperationName: op.Name,
			ReturnType:    op.ReturnType,
		}

		record, err := a.services.MutationService.Submit(ctx, op)
		if err != nil {
			failed++
			res.Error = err.Error()
			res.Conflicted = errors.Is(err, service.ErrConflictUnresolved)
			a.logger.Warn().
				Err(err).
				Str("operation_id", op.ID).
				Str("return_type", op.ReturnType).
				Bool("conflicted", res.Conflicted).
				Msg("operation failed")
		} else {
			res.Record = record
			a.logger.Info().
				Str("operation_id", op.ID).
				Str("return_type", op.ReturnType).
				Msg("operation applied")
		}

		results = append(results, res)
	}

	if err = writeOutput(a.out, results); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrOperationsFailed, failed, len(ops))
	}

	return nil
}

func (a *App) resolve(ctx context.Context) error {
	conflicts, err := readInput[models.ConflictInfo](a.path, a.in)
	if err != nil {
		return err
	}

	resolutions, err := a.services.ConflictService.ResolveAll(ctx, conflicts)
	if err != nil {
		return fmt.Errorf("resolve conflicts: %w", err)
	}

	if resolutions == nil {
		resolutions = []models.Resolution{}
	}

	return writeOutput(a.out, resolutions)
}
