package discord

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/northfold/AuroraBot/internal/metrics"
	"github.com/northfold/AuroraBot/internal/repository"
	"github.com/northfold/AuroraBot/internal/survival"
	"github.com/northfold/AuroraBot/internal/voice"
	"github.com/northfold/AuroraBot/internal/xp"
)

// Bot represents the Discord bot
type Bot struct {
	Session  *discordgo.Session
	AppID    string
	Registry *CommandRegistry

	XP       xp.Service
	Survival survival.Service
	Boards   *BoardManager
	Tracker  *voice.Tracker
	Tags     *TagChecker

	// seen deduplicates gateway interaction deliveries by interaction ID.
	seen *expirable.LRU[string, struct{}]
}

// Config holds the bot configuration
type Config struct {
	Token string
	AppID string
}

// Dependencies are the services the bot drives.
type Dependencies struct {
	XP        xp.Service
	Survival  survival.Service
	BoardRepo repository.Boards
}

// New creates a new Discord bot
func New(cfg Config, deps Dependencies) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	s.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent |
		discordgo.IntentsGuildVoiceStates

	b := &Bot{
		Session:  s,
		AppID:    cfg.AppID,
		Registry: NewCommandRegistry(),
		XP:       deps.XP,
		Survival: deps.Survival,
		Tags:     NewTagChecker(s),
		seen:     expirable.NewLRU[string, struct{}](InteractionCacheSize, nil, InteractionCacheTTL),
	}
	b.Boards = NewBoardManager(s, deps.XP, deps.Survival, deps.BoardRepo)
	b.Tracker = voice.NewTracker(b.voiceTick, voice.TickInterval)

	b.Registry.Register(ScoreCommand())
	b.Registry.Register(ScoreboardCommand())
	b.Registry.Register(LevelCommand())
	b.Registry.Register(LevelboardCommand())
	b.Registry.Register(VoiceCooldownCommand())

	return b, nil
}

// Start starts the bot
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)
	b.Session.AddHandler(b.messageCreate)
	b.Session.AddHandler(b.voiceStateUpdate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	slog.Info(LogMsgBotRunning)
	return nil
}

// Stop stops the bot
func (b *Bot) Stop() {
	b.Tracker.Stop(context.Background())
	b.Session.Close()
}

// Run runs the bot until a signal is received
func (b *Bot) Run() error {
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	return nil
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info(LogMsgBotReady, "user", s.State.User.Username)

	if err := s.UpdateGameStatus(0, "/score to add!"); err != nil {
		slog.Warn("Failed to set presence", "error", err)
	}

	// Reattach to board messages that survived a restart.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), BoardScanTimeout)
		defer cancel()
		b.Boards.RecoverSurvivalBoards(ctx)
	}()
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	if _, dup := b.seen.Get(i.ID); dup {
		slog.Debug(LogMsgDuplicateInteraction, "interaction_id", i.ID)
		return
	}
	b.seen.Add(i.ID, struct{}{})

	name := i.ApplicationCommandData().Name
	metrics.Commands.WithLabelValues(name).Inc()
	RecordCommand()

	b.Registry.Handle(s, i, b)
}
