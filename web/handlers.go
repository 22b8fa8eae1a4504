package web

import (
	"errors"
	"math"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mfeller/tradelog/journal"
	"github.com/mfeller/tradelog/market"
	"github.com/mfeller/tradelog/pkg/id"
)

const dateLayout = "2006-01-02"

// tradeCard decorates a trade for the history list.
type tradeCard struct {
	journal.Trade
	Tone      string // win, loss or flat
	ImageName string
}

type pageData struct {
	Trades      []tradeCard
	Summary     journal.Summary
	Selected    *journal.Trade
	IsNew       bool
	Instruments []string
	Directions  []market.Direction

	FormDate        string
	FormContracts   int
	FormCommissions float64
	FormFees        float64
	SelectedImage   string
}

func (s *Server) handleIndex(c *gin.Context) {
	s.renderPage(c, nil)
}

func (s *Server) handleShow(c *gin.Context) {
	t, err := s.store.Get(c.Param("id"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}
	s.renderPage(c, &t)
}

func (s *Server) renderPage(c *gin.Context, selected *journal.Trade) {
	trades, err := s.store.List()
	if err != nil {
		s.log.Error("list trades", zap.Error(err))
		c.String(http.StatusInternalServerError, "journal unavailable")
		return
	}
	journal.SortByDateDesc(trades)

	cards := make([]tradeCard, 0, len(trades))
	for _, t := range trades {
		cards = append(cards, tradeCard{
			Trade:     t,
			Tone:      tone(t.PnL),
			ImageName: filepath.Base(t.ImagePath),
		})
	}

	data := pageData{
		Trades:      cards,
		Summary:     journal.Summarize(trades),
		Selected:    selected,
		IsNew:       selected == nil,
		Instruments: market.Names(),
		Directions:  market.Directions(),
	}

	if selected == nil {
		// New trade: suggested costs come from the per-contract
		// constants. They are suggestions only; whatever the user
		// submits is what gets stored.
		data.FormDate = time.Now().Format(dateLayout)
		data.FormContracts = 1
		data.FormCommissions = s.cfg.Costs.CommissionPerContract
		data.FormFees = s.cfg.Costs.FeePerContract
	} else {
		data.FormDate = selected.Date
		data.FormContracts = selected.Contracts
		data.FormCommissions = selected.Commissions
		data.FormFees = selected.Fees
		if selected.ImagePath != "" {
			data.SelectedImage = filepath.Base(selected.ImagePath)
		}
	}

	c.HTML(http.StatusOK, "index.html", data)
}

func (s *Server) handleSubmit(c *gin.Context) {
	tradeID := c.Param("id")
	isNew := tradeID == ""

	var existing journal.Trade
	if !isNew {
		var err error
		existing, err = s.store.Get(tradeID)
		if err != nil {
			c.String(http.StatusNotFound, "trade not found")
			return
		}
	}

	contracts, err := strconv.Atoi(c.PostForm("contracts"))
	if err != nil || contracts < 1 {
		contracts = 1
	}

	commissions := parseCost(c.PostForm("commissions"), s.cfg.Costs.CommissionPerContract*float64(contracts))
	fees := parseCost(c.PostForm("fees"), s.cfg.Costs.FeePerContract*float64(contracts))

	direction, _ := market.ParseDirection(c.PostForm("direction"))

	date := c.PostForm("date")
	if _, err := time.Parse(dateLayout, date); err != nil {
		date = time.Now().Format(dateLayout)
	}

	// Image handling mirrors the submit flow the journal has always
	// had: explicit delete first, then an upload replaces whatever is
	// left, freeing the previous file.
	imagePath := existing.ImagePath
	if !isNew && c.PostForm("delete_image") == "on" && imagePath != "" {
		if err := s.images.Remove(imagePath); err != nil {
			s.log.Warn("remove image", zap.String("path", imagePath), zap.Error(err))
		}
		imagePath = ""
	}

	// Browsers submit an empty part when no file is chosen; only a
	// named, non-empty upload counts.
	if file, err := c.FormFile("screenshot"); err == nil && file != nil && file.Filename != "" && file.Size > 0 {
		if file.Size > s.cfg.Images.MaxUploadBytes {
			c.String(http.StatusBadRequest, "image too large")
			return
		}
		src, err := file.Open()
		if err != nil {
			c.String(http.StatusBadRequest, "unreadable upload")
			return
		}
		defer src.Close()

		newPath, err := s.images.Replace(imagePath, file.Filename, src)
		if newPath == "" {
			// Upload failed: the trade is not saved, matching the
			// journal's long-standing behavior.
			c.String(http.StatusBadRequest, "image upload failed: %v", err)
			return
		}
		if err != nil {
			// The new screenshot is stored; only the old file could
			// not be freed.
			s.log.Warn("remove image", zap.String("path", imagePath), zap.Error(err))
		}
		imagePath = newPath
	}

	t := journal.Trade{
		ID:          tradeID,
		Date:        date,
		Instrument:  c.PostForm("instrument"),
		Direction:   direction.String(),
		Contracts:   contracts,
		Entry:       c.PostForm("entry"),
		Exit:        c.PostForm("exit"),
		Commissions: commissions,
		Fees:        fees,
		Setup:       c.PostForm("setup"),
		Notes:       c.PostForm("notes"),
		ImagePath:   imagePath,
		Timestamp:   time.Now().UTC(),
	}
	if isNew {
		t.ID = id.New()
	}
	t.RecomputePnL()

	if err := s.store.Upsert(t); err != nil {
		s.log.Error("upsert trade", zap.String("id", t.ID), zap.Error(err))
		c.String(http.StatusInternalServerError, "save failed")
		return
	}

	s.log.Info("trade saved",
		zap.String("id", t.ID),
		zap.Bool("new", isNew),
		zap.Float64("pnl", t.PnL),
	)
	c.Redirect(http.StatusSeeOther, "/trades/"+t.ID)
}

func (s *Server) handleDelete(c *gin.Context) {
	tradeID := c.Param("id")

	t, err := s.store.Get(tradeID)
	if err != nil {
		if errors.Is(err, journal.ErrNotFound) {
			c.Redirect(http.StatusSeeOther, "/")
			return
		}
		c.String(http.StatusInternalServerError, "journal unavailable")
		return
	}

	if t.ImagePath != "" {
		if err := s.images.Remove(t.ImagePath); err != nil {
			s.log.Warn("remove image", zap.String("path", t.ImagePath), zap.Error(err))
		}
	}

	if err := s.store.Delete(tradeID); err != nil {
		c.String(http.StatusInternalServerError, "delete failed")
		return
	}

	s.log.Info("trade deleted", zap.String("id", tradeID))
	c.Redirect(http.StatusSeeOther, "/")
}

func (s *Server) handleImage(c *gin.Context) {
	path := s.storedImagePath(c.Param("name"))
	c.File(path)
}

func (s *Server) handleThumb(c *gin.Context) {
	path := s.storedImagePath(c.Param("name"))

	thumb, err := s.images.Thumbnail(path, 360)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.File(thumb)
}

// storedImagePath maps a URL name back into the image directory.
// Base-name only, so traversal outside the store is impossible.
func (s *Server) storedImagePath(name string) string {
	return filepath.Join(s.images.Root(), filepath.Base(name))
}

// parseCost parses a submitted dollar amount. Negative and non-finite
// values fall back to the suggested default; a NaN here would otherwise
// end up in the stored P&L and make the record unserializable.
func parseCost(raw string, fallback float64) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

func tone(pnl float64) string {
	switch {
	case pnl > 0:
		return "win"
	case pnl < 0:
		return "loss"
	default:
		return "flat"
	}
}
