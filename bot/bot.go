package bot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"schnose/bot/common"
	"schnose/bot/features/info"
	"schnose/bot/features/maps"
	"schnose/bot/features/players"
	"schnose/bot/features/preferences"
	"schnose/bot/features/records"
	"schnose/service"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Config holds bot configuration
type Config struct {
	Token   string
	GuildID string
}

// Services are the dependencies the command handlers run against
type Services struct {
	Preferences service.PreferenceService
	Modes       service.ModeResolver
	Targets     service.TargetResolver
	Maps        service.MapResolver
	Records     service.RecordAggregator
	MapInfo     service.MapService
	Players     service.PlayerService
	Status      service.StatusService
}

// CommandHandler answers one slash command. The error it returns has already
// been reported to the user; it is only logged and counted.
type CommandHandler func(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error

// CommandObserver is told how each command finished. metrics.Metrics satisfies it.
type CommandObserver interface {
	ObserveCommand(command, outcome string, elapsed time.Duration)
}

// Command outcomes
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

type Bot struct {
	config   Config
	session  *discordgo.Session
	handlers map[string]CommandHandler
	observer CommandObserver
}

func New(config Config, services Services, observer CommandObserver) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds

	bot := &Bot{
		config:   config,
		session:  dg,
		handlers: newDispatchTable(services),
		observer: observer,
	}

	dg.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.WithFields(log.Fields{
			"user":   r.User.Username,
			"guilds": len(r.Guilds),
		}).Info("Connected to Discord")
	})
	dg.AddHandler(bot.handleCommands)

	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	return bot, nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

// newDispatchTable maps every registered command name to its handler
func newDispatchTable(services Services) map[string]CommandHandler {
	infoFeature := info.NewFeature(services.Status, Commands())
	preferencesFeature := preferences.NewFeature(services.Preferences)
	mapsFeature := maps.NewFeature(services.Maps, services.MapInfo)
	recordsFeature := records.NewFeature(services.Maps, services.Modes, services.Targets, services.Records, services.MapInfo)
	playersFeature := players.NewFeature(services.Modes, services.Targets, services.Players)

	return map[string]CommandHandler{
		"ping":      infoFeature.HandleCommand,
		"help":      infoFeature.HandleCommand,
		"apistatus": infoFeature.HandleCommand,
		"invite":    infoFeature.HandleCommand,
		"nocrouch":  infoFeature.HandleCommand,
		"mode":      preferencesFeature.HandleCommand,
		"setsteam":  preferencesFeature.HandleCommand,
		"db":        preferencesFeature.HandleCommand,
		"map":       mapsFeature.HandleCommand,
		"random":    mapsFeature.HandleCommand,
		"wr":        recordsFeature.HandleCommand,
		"bwr":       recordsFeature.HandleCommand,
		"pb":        recordsFeature.HandleCommand,
		"bpb":       recordsFeature.HandleCommand,
		"maptop":    recordsFeature.HandleCommand,
		"bmaptop":   recordsFeature.HandleCommand,
		"profile":   playersFeature.HandleCommand,
		"top":       playersFeature.HandleCommand,
		"btop":      playersFeature.HandleCommand,
	}
}

func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	handler, ok := b.handlers[name]
	if !ok {
		log.WithField("command", name).Warn("Received unknown command")
		return
	}

	logger := log.WithFields(log.Fields{
		"request_id": uuid.NewString(),
		"command":    name,
		"user_id":    common.InvokerID(i),
		"guild_id":   i.GuildID,
	})
	logger.Debug("Handling command")

	started := time.Now()
	err := handler(context.Background(), s, i)
	elapsed := time.Since(started)

	outcome := commandOutcome(err)
	if b.observer != nil {
		b.observer.ObserveCommand(name, outcome, elapsed)
	}

	entry := logger.WithFields(log.Fields{
		"outcome":    outcome,
		"elapsed_ms": elapsed.Milliseconds(),
	})
	switch outcome {
	case OutcomeError:
		entry.WithError(err).Error("Command failed")
	default:
		entry.Debug("Command finished")
	}
}

// commandOutcome classifies a handler result. Errors the user caused, such
// as an unknown map, are rejections rather than failures.
func commandOutcome(err error) string {
	if err == nil {
		return OutcomeOK
	}
	var botErr *common.BotError
	if errors.As(err, &botErr) && botErr.IsUserError() {
		return OutcomeRejected
	}
	return OutcomeError
}
