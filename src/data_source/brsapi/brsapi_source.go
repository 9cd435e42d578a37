package brsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"market-viewer/src/helpers"
	"market-viewer/src/interfaces"
	"market-viewer/src/logger"
	"market-viewer/src/models"
)

// BrsAPISource fetches the combined gold, currency and cryptocurrency board.
type BrsAPISource struct {
	Config  *models.MConfig
	Network interfaces.INetworkManager
	Logger  *logger.Logger
	now     func() time.Time
}

// -----------------------------------------------------------------------------

func NewBrsAPISource(cfg *models.MConfig, netMgr interfaces.INetworkManager, log *logger.Logger) *BrsAPISource {
	return &BrsAPISource{
		Config:  cfg,
		Network: netMgr,
		Logger:  log,
		now:     time.Now,
	}
}

// -----------------------------------------------------------------------------

func (s *BrsAPISource) Name() string {
	return "brsapi"
}

// -----------------------------------------------------------------------------

// Fetch requests the board once and converts it into a snapshot.
func (s *BrsAPISource) Fetch(ctx context.Context) (*models.MSnapshot, error) {
	params := map[string]string{"key": s.Config.DataSource.APIKey}

	body, err := s.Network.Get(ctx, s.Config.DataSource.Endpoint, params)
	if err != nil {
		return nil, err
	}

	snap, err := s.parse(body)
	if err != nil {
		return nil, err
	}
	snap.CapturedAt = s.now()

	s.Logger.Debug("Fetched %d gold, %d currency, %d crypto items",
		len(snap.Gold), len(snap.Currency), len(snap.Crypto))
	return snap, nil
}

// -----------------------------------------------------------------------------

type rawInstrument struct {
	Symbol        string    `json:"symbol"`
	Name          string    `json:"name"`
	Price         flexFloat `json:"price"`
	Unit          string    `json:"unit"`
	ChangeValue   flexFloat `json:"change_value"`
	ChangePercent flexFloat `json:"change_percent"`
	MarketCap     flexFloat `json:"market_cap"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
}

func (r rawInstrument) base() models.Instrument {
	return models.Instrument{
		Symbol:        strings.TrimSpace(r.Symbol),
		Name:          strings.TrimSpace(r.Name),
		Price:         float64(r.Price),
		Unit:          r.Unit,
		ChangeValue:   float64(r.ChangeValue),
		ChangePercent: float64(r.ChangePercent),
		Date:          r.Date,
		Time:          r.Time,
	}
}

// -----------------------------------------------------------------------------

// parse validates the payload shape with gjson before decoding each category.
// A missing or non-array category is EmptyDataError, never a partial snapshot.
func (s *BrsAPISource) parse(body []byte) (*models.MSnapshot, error) {
	if !gjson.ValidBytes(body) {
		return nil, helpers.NewParseError("response is not valid JSON", nil)
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, helpers.NewParseError(fmt.Sprintf("expected JSON object, got %s", root.Type), nil)
	}

	lists := make(map[models.Category][]rawInstrument, len(models.Categories))
	var missing []string
	for _, c := range models.Categories {
		field := root.Get(string(c))
		if !field.IsArray() {
			missing = append(missing, string(c))
			continue
		}
		var items []rawInstrument
		if err := json.Unmarshal([]byte(field.Raw), &items); err != nil {
			return nil, helpers.NewParseError(fmt.Sprintf("decode %s", c), err)
		}
		lists[c] = items
	}
	if len(missing) > 0 {
		return nil, helpers.NewEmptyDataError(missing)
	}

	snap := &models.MSnapshot{
		Gold:     make([]models.MGoldInstrument, 0, len(lists[models.CategoryGold])),
		Currency: make([]models.MCurrencyInstrument, 0, len(lists[models.CategoryCurrency])),
		Crypto:   make([]models.MCryptoInstrument, 0, len(lists[models.CategoryCrypto])),
	}
	for _, r := range s.sanitize(models.CategoryGold, lists[models.CategoryGold]) {
		snap.Gold = append(snap.Gold, models.MGoldInstrument{Instrument: r.base()})
	}
	for _, r := range s.sanitize(models.CategoryCurrency, lists[models.CategoryCurrency]) {
		snap.Currency = append(snap.Currency, models.MCurrencyInstrument{Instrument: r.base()})
	}
	for _, r := range s.sanitize(models.CategoryCrypto, lists[models.CategoryCrypto]) {
		mc := float64(r.MarketCap)
		if mc < 0 {
			mc = 0
		}
		snap.Crypto = append(snap.Crypto, models.MCryptoInstrument{Instrument: r.base(), MarketCap: mc})
	}
	return snap, nil
}

// -----------------------------------------------------------------------------

// sanitize drops records without a symbol, with a negative price, or whose
// symbol repeats within the category. Order is preserved.
func (s *BrsAPISource) sanitize(c models.Category, items []rawInstrument) []rawInstrument {
	out := items[:0:0]
	seen := make(map[string]struct{}, len(items))
	for i, it := range items {
		sym := strings.TrimSpace(it.Symbol)
		switch {
		case sym == "":
			s.Logger.Warning("Dropping %s item %d: empty symbol", c, i)
			continue
		case it.Price < 0:
			s.Logger.Warning("Dropping %s item %s: negative price %v", c, sym, float64(it.Price))
			continue
		}
		if _, dup := seen[sym]; dup {
			s.Logger.Warning("Dropping %s item %s: duplicate symbol", c, sym)
			continue
		}
		seen[sym] = struct{}{}
		out = append(out, it)
	}
	return out
}

// -----------------------------------------------------------------------------

// flexFloat accepts JSON numbers, numeric strings (optionally with thousands
// separators) and null.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" || s == `""` {
		*f = 0
		return nil
	}
	if unq, err := strconv.Unquote(s); err == nil {
		s = strings.ReplaceAll(strings.TrimSpace(unq), ",", "")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("invalid number %s", string(b))
	}
	*f = flexFloat(v)
	return nil
}
