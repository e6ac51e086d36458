package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bnema/actionitems/internal/domain"
	"github.com/bnema/actionitems/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	ItemsPathKey    = "items.path"
	itemsFileMode   = 0o600
	itemsDirMode    = 0o700
	itemsConfigDir  = ".actionitems"
	itemsConfigFile = "items.toml"
	tempFilePattern = ".items-*.toml.tmp"
)

// Repository stores item definitions in a single TOML file.
type Repository struct {
	itemsPath string
	mu        *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.ItemDefinitionRepository = (*Repository)(nil)

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg.SetDefault(ItemsPathKey, filepath.Join(homeDir, itemsConfigDir, itemsConfigFile))

	itemsPath := cfg.GetString(ItemsPathKey)
	if itemsPath == "" {
		return nil, errors.New("items path is empty")
	}
	itemsPath, err = normalizeItemsPath(itemsPath)
	if err != nil {
		return nil, err
	}

	return &Repository{itemsPath: itemsPath, mu: lockForPath(itemsPath)}, nil
}

func (r *Repository) Path() string {
	return r.itemsPath
}

func (r *Repository) Save(ctx context.Context, def domain.ItemDefinition) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSchema(def)
	updated := false
	for i := range file.Items {
		if domain.NormalizeItemID(file.Items[i].ID) == def.ID {
			file.Items[i] = encoded
			updated = true
			break
		}
	}

	if !updated {
		file.Items = append(file.Items, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) GetByID(ctx context.Context, id domain.ItemID) (domain.ItemDefinition, error) {
	if err := ctx.Err(); err != nil {
		return domain.ItemDefinition{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.ItemDefinition{}, err
	}

	for _, entry := range file.Items {
		if domain.NormalizeItemID(entry.ID) == id {
			return fromSchema(entry), nil
		}
	}

	return domain.ItemDefinition{}, domain.ErrDefinitionNotFound
}

func (r *Repository) List(ctx context.Context) ([]domain.ItemDefinition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	defs := make([]domain.ItemDefinition, 0, len(file.Items))
	for _, entry := range file.Items {
		defs = append(defs, fromSchema(entry))
	}

	return defs, nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.itemsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{Version: currentSchemaVersion}, nil
		}
		return fileSchema{}, fmt.Errorf("read items file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode items file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeItemsPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve items path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.itemsPath), itemsDirMode); err != nil {
		return fmt.Errorf("create items directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode items file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.itemsPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp items file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp items file: %w", err)
	}

	if err := tempFile.Chmod(itemsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp items file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp items file: %w", err)
	}

	if err := os.Rename(tempName, r.itemsPath); err != nil {
		return fmt.Errorf("replace items file: %w", err)
	}

	cleanup = false
	return nil
}

func toSchema(def domain.ItemDefinition) itemSchema {
	entry := itemSchema{
		ID:           string(def.ID),
		Material:     def.Material,
		DisplayName:  def.DisplayName,
		Lore:         def.Lore,
		ModelData:    def.ModelData,
		Cooldown:     def.CooldownSeconds,
		ConsumeOnUse: def.ConsumeOnUse,
	}

	for _, action := range def.Actions {
		entry.Actions = append(entry.Actions, actionSchema{
			Text:            action.Text,
			DelayTicks:      int64(action.DelayTicks),
			DelayWhenPrefix: action.DelayWhenPrefix,
		})
	}

	if def.TimedEffect != nil {
		entry.TimedEffect = &timedEffectSchema{
			Name:     def.TimedEffect.Name,
			Duration: def.TimedEffect.DurationSeconds,
		}
	}

	return entry
}

// fromSchema prefers explicit actions; a legacy commands list is migrated
// only when no actions are present.
func fromSchema(entry itemSchema) domain.ItemDefinition {
	def := domain.ItemDefinition{
		ID:              domain.NormalizeItemID(entry.ID),
		Material:        entry.Material,
		DisplayName:     entry.DisplayName,
		Lore:            entry.Lore,
		ModelData:       entry.ModelData,
		CooldownSeconds: entry.Cooldown,
		ConsumeOnUse:    entry.ConsumeOnUse,
	}

	if len(entry.Actions) > 0 {
		def.Actions = make([]domain.Action, 0, len(entry.Actions))
		for _, action := range entry.Actions {
			def.Actions = append(def.Actions, domain.Action{
				Text:            action.Text,
				DelayTicks:      domain.Ticks(action.DelayTicks),
				DelayWhenPrefix: action.DelayWhenPrefix,
			})
		}
	} else if len(entry.Commands) > 0 {
		def.Actions = domain.ActionsFromCommands(entry.Commands)
	}

	if entry.TimedEffect != nil {
		def.TimedEffect = &domain.TimedEffect{
			Name:            entry.TimedEffect.Name,
			DurationSeconds: entry.TimedEffect.Duration,
		}
	}

	return def
}
