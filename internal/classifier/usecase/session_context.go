package usecase

import (
	"context"
	"fmt"
	"strings"

	"intent-router/internal/classifier"
)

// SessionContext returns up to turns recent turns with slot memory, pending
// sub-intents and a one-line summary. turns <= 0 uses DefaultContextTurns.
func (uc *implUseCase) SessionContext(ctx context.Context, sessionID string, turns int) (classifier.SessionContext, error) {
	if err := ctx.Err(); err != nil {
		return classifier.SessionContext{}, err
	}
	if turns <= 0 {
		turns = DefaultContextTurns
	}
	sessionID = sessionOrDefault(sessionID, classifier.DefaultSessionID)

	history := uc.sessions.Recent(sessionID, turns)
	intents := make([]string, len(history))
	for i, t := range history {
		intents[i] = t.Intent
	}

	return classifier.SessionContext{
		SessionID:     sessionID,
		History:       history,
		RecentIntents: intents,
		SlotMemory:    uc.sessions.SlotMemory(sessionID),
		Pending:       uc.sessions.Pending(sessionID),
		Summary:       summarize(intents),
	}, nil
}

// NextPending returns the first unhandled sub-intent of the latest turn.
func (uc *implUseCase) NextPending(ctx context.Context, sessionID string) (classifier.PendingIntent, bool, error) {
	if err := ctx.Err(); err != nil {
		return classifier.PendingIntent{}, false, err
	}

	sessionID = sessionOrDefault(sessionID, classifier.DefaultSessionID)
	pending := uc.sessions.Pending(sessionID)
	if len(pending) == 0 {
		return classifier.PendingIntent{}, false, nil
	}
	return classifier.PendingIntent{Intent: pending[0], Remaining: len(pending) - 1}, true, nil
}

func (uc *implUseCase) ClearSession(ctx context.Context, sessionID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	sessionID = sessionOrDefault(sessionID, classifier.DefaultSessionID)
	uc.sessions.Clear(sessionID)
	uc.rec.SetActiveSessions(uc.sessions.Len())
	uc.l.Infof(ctx, "%s: "+LogMsgSessionCleared, LogPrefixClearSession, sessionID)
	return nil
}

func summarize(intents []string) string {
	if len(intents) == 0 {
		return SummaryEmpty
	}
	unique := uniqueInOrder(intents)
	if len(unique) == 1 {
		return fmt.Sprintf(SummarySingle, unique[0], len(intents))
	}
	return fmt.Sprintf(SummaryMany, strings.Join(unique, ", "), len(intents))
}
