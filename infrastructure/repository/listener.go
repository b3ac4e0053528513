package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

const creativeChangesChannel = "criativos_changes"

// ChangeEvent é a notificação de insert/update/delete na tabela de criativos,
// emitida pelo trigger de pg_notify. Usada apenas para live-refresh do
// dashboard; a correção do catálogo não depende dela.
type ChangeEvent struct {
	Operation  string `json:"operacao"`
	CreativeID int    `json:"criativo_id"`
}

// CreativeListener escuta o canal LISTEN/NOTIFY de mudanças em criativos.
type CreativeListener struct {
	listener *pq.Listener
	events   chan ChangeEvent
	cancel   context.CancelFunc
}

// NewCreativeListener abre a escuta no canal de mudanças. A assinatura deve
// ser encerrada explicitamente com Close.
func NewCreativeListener(dsn string) (*CreativeListener, error) {
	listener := pq.NewListener(dsn, 10*time.Second, time.Minute, func(event pq.ListenerEventType, err error) {
		if err != nil {
			logrus.WithError(err).Warn("Evento de conexão do listener de criativos")
		}
	})

	if err := listener.Listen(creativeChangesChannel); err != nil {
		_ = listener.Close()
		return nil, err
	}

	return &CreativeListener{
		listener: listener,
		events:   make(chan ChangeEvent, 16),
	}, nil
}

// Start repassa notificações para o canal de eventos até o contexto ser
// cancelado ou Close ser chamado.
func (l *CreativeListener) Start(ctx context.Context) {
	ctx, l.cancel = context.WithCancel(ctx)

	go func() {
		defer close(l.events)

		for {
			select {
			case <-ctx.Done():
				return
			case notification, ok := <-l.listener.Notify:
				if !ok {
					return
				}

				// Notificações de reconexão chegam como nil
				if notification == nil {
					continue
				}

				event := ChangeEvent{}
				if err := json.Unmarshal([]byte(notification.Extra), &event); err != nil {
					logrus.WithError(err).Warn("Payload de notificação de criativos malformado")
					continue
				}

				select {
				case l.events <- event:
				default:
					logrus.Warn("Canal de eventos de criativos cheio, descartando notificação")
				}
			}
		}
	}()
}

// Events expõe o canal de notificações.
func (l *CreativeListener) Events() <-chan ChangeEvent {
	return l.events
}

// Close encerra a assinatura.
func (l *CreativeListener) Close() error {
	if l.cancel != nil {
		l.cancel()
	}
	return l.listener.Close()
}
