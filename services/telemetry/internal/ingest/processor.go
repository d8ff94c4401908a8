// Package ingest turns telemetry messages into stored readings.
package ingest

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/02loveslollipop/sgsb-barragens/services/api/db"
	"github.com/02loveslollipop/sgsb-barragens/services/api/models"
)

// Store is the part of db.Store the processor writes through.
type Store interface {
	GetInstrumentoByCodigo(ctx context.Context, codigo string) (*models.Instrumento, error)
	UltimaLeitura(ctx context.Context, instrumentoID int64) (*models.Leitura, error)
	CreateLeitura(ctx context.Context, in models.LeituraInput, usuarioID string) (db.LeituraResult, error)
}

// Options tune the processor.
type Options struct {
	UserID       string
	MinInterval  time.Duration
	ValueEpsilon float64
	DryRun       bool
}

// Processor stores telemetry readings through the same path as manual ones,
// so they are evaluated against the instrument levels and alerted alike.
type Processor struct {
	store  Store
	opts   Options
	logger *zap.Logger
	now    func() time.Time
}

func NewProcessor(store Store, opts Options, logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{store: store, opts: opts, logger: logger, now: time.Now}
}

// Handle processes one MQTT message. Skipped messages are not errors.
func (p *Processor) Handle(ctx context.Context, topic string, payload []byte) error {
	msg, err := Decode(topic, payload)
	if err != nil {
		return err
	}
	value := NormalizeValue(msg.Valor)
	if value == nil {
		p.logger.Debug("sentinel or missing value dropped", zap.String("codigo", msg.Codigo))
		return nil
	}

	inst, err := p.store.GetInstrumentoByCodigo(ctx, msg.Codigo)
	if err != nil {
		return err
	}
	if inst == nil {
		p.logger.Warn("unknown instrument", zap.String("codigo", msg.Codigo), zap.String("topic", topic))
		return nil
	}

	ts := msg.Timestamp(p.now())
	last, err := p.store.UltimaLeitura(ctx, inst.ID)
	if err != nil {
		return err
	}
	if !ShouldStore(last, ts, *value, p.opts.MinInterval, p.opts.ValueEpsilon) {
		p.logger.Debug("reading unchanged, skipped",
			zap.String("codigo", inst.Codigo),
			zap.String("valor", ValuePtrString(value)),
		)
		return nil
	}

	in := models.LeituraInput{
		InstrumentoID: inst.ID,
		DataHora:      ts.Format(time.RFC3339Nano),
		Valor:         formatNumber(*value),
		Origem:        strPtr("automatico"),
	}
	if nm := NormalizeValue(msg.NivelMontante); nm != nil {
		in.NivelMontante = strPtr(formatNumber(*nm))
	}

	if p.opts.DryRun {
		p.logger.Info("dry-run: would insert reading",
			zap.String("codigo", inst.Codigo),
			zap.Time("data_hora", ts),
			zap.String("valor", in.Valor),
		)
		return nil
	}

	result, err := p.store.CreateLeitura(ctx, in, p.opts.UserID)
	if err != nil {
		return err
	}
	fields := []zap.Field{
		zap.Int64("leitura_id", result.ID),
		zap.String("codigo", inst.Codigo),
		zap.String("valor", in.Valor),
	}
	if result.Inconsistencia {
		p.logger.Warn("inconsistent reading stored", append(fields, zap.Stringp("tipo", result.TipoInconsistencia))...)
		return nil
	}
	p.logger.Info("reading stored", fields...)
	return nil
}

func strPtr(s string) *string {
	return &s
}
