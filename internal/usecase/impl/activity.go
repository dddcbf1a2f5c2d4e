package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "elyukal/internal/delivery/context"
	"elyukal/internal/domain/entity"
	"elyukal/internal/domain/repository"
)

// recordActivity appends an audit log entry on a best-effort basis. A failed
// write is logged and swallowed; the triggering operation has already
// succeeded and must not be rolled back for audit reasons.
func recordActivity(ctx context.Context, logger *slog.Logger, activities repository.ActivityRepository, actorName, actionType, resourceType, resourceName string) {
	entry := &entity.AdminActivity{
		AdminName:    actorName,
		ActionType:   actionType,
		ResourceType: resourceType,
		ResourceName: resourceName,
		Timestamp:    time.Now().UTC(),
	}

	if err := activities.Create(ctx, entry); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, logger).Warn("Failed to record activity",
			slog.Any("error", err),
			slog.String("action", actionType),
			slog.String("resource", resourceName),
		)
	}
}

// recordTransition logs an archive-family transition. The activity table only
// knows the base verbs added/edited/deleted, so the precise transition verb is
// appended to the resource name instead.
func recordTransition(ctx context.Context, logger *slog.Logger, activities repository.ActivityRepository, actorName, verb, productName string) {
	actionType := entity.ActionEdited
	if verb == "permanently deleted" {
		actionType = entity.ActionDeleted
	}

	recordActivity(ctx, logger, activities, actorName, actionType, "product", fmt.Sprintf("%s (%s)", productName, verb))
}
