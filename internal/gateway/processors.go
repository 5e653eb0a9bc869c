package gateway

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/architus-bot/logs-core/internal/event"
	"github.com/architus-bot/logs-core/internal/platform"
)

// Discord audit log action type codes (stable, documented by the platform)
// used to match an AuditLogSource's predicate against the administrative
// action that caused a given gateway event.
const (
	actionChannelCreate    = 10
	actionChannelDelete    = 12
	actionMemberKick       = 20
	actionMemberBanAdd     = 22
	actionMemberBanRemove  = 23
	actionMemberRoleUpdate = 25
)

var (
	idPath      = MustCompilePath(".id")
	contentPath = MustCompileOptionalPath(".content")
	namePath    = MustCompileOptionalPath(".name")

	memberTargetPath = MustCompilePath(".user.id")
	roleIDPath       = MustCompilePath(".role.id")

	auditLogIDPath     = MustCompilePath(".id")
	auditLogReasonPath = MustCompileOptionalPath(".reason")
	auditLogUserIDPath = MustCompilePath(".user_id")
)

func wrapIDParams(id uint64) (event.IDParams, error) { return event.IDParams{id}, nil }

func ingressTimestamp(ctx Context) (uint64, error) { return ctx.Event.IngressTimestamp, nil }

// buildSimpleDirect assembles a Direct processor's Source for event types
// that need no audit-log enrichment: an id, an optional single content
// field, and the gateway payload as the sole Source fragment.
func buildSimpleDirect(normalizedType event.Type, contentField string, content *Path) Source[event.NormalizedEvent] {
	return FromFunc(func(ctx Context) (event.NormalizedEvent, error) {
		id, err := FromGateway(ctx, idPath, ToUint64)
		if err != nil {
			return event.NormalizedEvent{}, err
		}

		var fields event.Content
		if content != nil {
			body, err := FromGateway(ctx, content, ToOptionalString)
			if err != nil {
				return event.NormalizedEvent{}, err
			}
			if body != nil {
				fields = event.Content{Fields: map[string]any{contentField: *body}}
			}
		}

		gatewayJSON, err := json.Marshal(ctx.SourceJSON)
		if err != nil {
			return event.NormalizedEvent{}, FatalSourceError(fmt.Errorf("serialize gateway source: %w", err))
		}
		src := event.Source{Gateway: gatewayJSON}

		return event.NormalizedEvent{
			IDParams:  event.IDParams{id},
			Timestamp: ctx.Event.IngressTimestamp,
			Source:    src,
			Origin:    src.Origin(),
			EventType: normalizedType,
			GuildID:   ctx.Event.GuildID,
			Content:   fields,
		}, nil
	})
}

// buildMemberAuditProcessor assembles a SplitProcessor for member-targeted
// moderation events (ban, unban, kick, role change): the subject is read
// straight from the gateway payload, while id, reason and the acting
// moderator are read from the matching audit log entry (spec.md §4.4,
// §4.5).
func buildMemberAuditProcessor(normalizedType event.Type, actionType int) SplitProcessor {
	auditSource := NewAuditLogSource(func(ctx Context) platform.SearchQuery {
		targetID, _ := FromGateway(ctx, memberTargetPath, ToUint64)
		return platform.SearchQuery{
			GuildID: ctx.Event.GuildID,
			Limit:   10,
			Match: func(e platform.AuditLogEntry) bool {
				return e.TargetID == targetID && e.ActionType == actionType
			},
		}
	})

	return SplitProcessor{
		EventType: Constant(normalizedType),
		IDParams:  Map(AuditLogPath(auditLogIDPath, ToUint64), wrapIDParams),
		Timestamp: FromFunc(ingressTimestamp),
		Reason:    AuditLogPath(auditLogReasonPath, ToOptionalString),
		Channel:   Constant[*event.Entity](nil),
		Agent:     Map(AuditLogPath(auditLogUserIDPath, ToUint64), EntityFromID("member")),
		Subject:   Map(GatewayPath(memberTargetPath, ToUint64), EntityFromID("member")),
		Auxiliary: Constant[*event.Entity](nil),
		Content:   Constant(event.Content{}),
		AuditLog:  auditSource,
	}
}

// BuildDefaultFleet registers the processor set for every normalized event
// type this core recognizes (spec.md §4.6, §9 scenarios S1-S3).
func BuildDefaultFleet(deps Deps, logger *slog.Logger) *Fleet {
	fleet := NewFleet(deps, logger)

	fleet.Register("MESSAGE_CREATE", Direct{Source: buildSimpleDirect(event.TypeMessageSend, "body", contentPath)})
	fleet.Register("MESSAGE_UPDATE", Direct{Source: buildSimpleDirect(event.TypeMessageEdit, "body", contentPath)})
	fleet.Register("MESSAGE_DELETE", Direct{Source: buildSimpleDirect(event.TypeMessageDelete, "", nil)})
	fleet.Register("CHANNEL_CREATE", Direct{Source: buildSimpleDirect(event.TypeChannelCreate, "name", namePath)})
	fleet.Register("CHANNEL_DELETE", Direct{Source: buildSimpleDirect(event.TypeChannelDelete, "name", namePath)})

	fleet.Register("MEMBER_BAN_ADD", buildMemberAuditProcessor(event.TypeMemberBanAdd, actionMemberBanAdd))
	fleet.Register("MEMBER_BAN_REMOVE", buildMemberAuditProcessor(event.TypeMemberBanRemove, actionMemberBanRemove))
	fleet.Register("MEMBER_KICK", buildMemberAuditProcessor(event.TypeMemberKick, actionMemberKick))

	roleAdd := buildMemberAuditProcessor(event.TypeMemberRoleAdd, actionMemberRoleUpdate)
	roleAdd.Auxiliary = Map(GatewayPath(roleIDPath, ToUint64), EntityFromID("role"))
	fleet.Register("MEMBER_ROLE_ADD", roleAdd)

	return fleet
}
