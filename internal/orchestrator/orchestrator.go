// internal/orchestrator/orchestrator.go

// Package orchestrator sequences the per-turn agent pipeline. Every turn is
// stateless and self-contained; no history is carried between turns.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	calculatefinancing "realty-concierge/internal/agents/calculate-financing"
	generatereply "realty-concierge/internal/agents/generate-reply"
	negotiateprice "realty-concierge/internal/agents/negotiate-price"
	parsepreferences "realty-concierge/internal/agents/parse-preferences"
	recommendlistings "realty-concierge/internal/agents/recommend-listings"
	scoresentiment "realty-concierge/internal/agents/score-sentiment"
	sendfollowup "realty-concierge/internal/agents/send-followup"
	apperrors "realty-concierge/internal/common/errors"
	"realty-concierge/internal/common/logger"
	"realty-concierge/internal/common/metrics"
	"realty-concierge/internal/models"
)

// AckReply replaces the assembled reply after a follow-up is triggered,
// regardless of delivery outcome.
const AckReply = "Thank you! I've sent the details to your WhatsApp. A representative will be in touch shortly."

const (
	offerTemplate     = "\n\nI found a great option for you! It's a %s in %s. Based on current demand, I can offer it for **$%.0f**."
	financingTemplate = "\n\nFor financing, here are some estimated options based on an 80%% loan: %s."
	followupTemplate  = "Thanks for your interest in the %s in %s! The special offered price is $%.0f. Please reply to this message to connect with a human agent."
)

// ReplyGenerator is the conversational-text collaborator. May fail; the
// orchestrator substitutes the fallback greeting.
type ReplyGenerator interface {
	Execute(ctx context.Context, input *generatereply.Input) (*generatereply.Output, error)
}

// FollowupSender delivers the end-of-session SMS. Best effort.
type FollowupSender interface {
	Execute(ctx context.Context, input *sendfollowup.Input) (*sendfollowup.Output, error)
}

type Orchestrator struct {
	greeter    ReplyGenerator
	prefs      *parsepreferences.Handler
	recommend  *recommendlistings.Handler
	sentiment  *scoresentiment.Handler
	negotiator *negotiateprice.Handler
	financing  *calculatefinancing.Handler
	followup   FollowupSender

	// seasonality supplies the per-turn market adjustment factor.
	// Injected so tests can pin it.
	seasonality func() float64

	logger logger.Logger
}

type Dependencies struct {
	Greeter    ReplyGenerator
	Prefs      *parsepreferences.Handler
	Recommend  *recommendlistings.Handler
	Sentiment  *scoresentiment.Handler
	Negotiator *negotiateprice.Handler
	Financing  *calculatefinancing.Handler
	Followup   FollowupSender

	Seasonality func() float64
	Logger      logger.Logger
}

func New(deps Dependencies) *Orchestrator {
	seasonality := deps.Seasonality
	if seasonality == nil {
		seasonality = func() float64 {
			return 0.95 + rand.Float64()*0.10
		}
	}
	return &Orchestrator{
		greeter:     deps.Greeter,
		prefs:       deps.Prefs,
		recommend:   deps.Recommend,
		sentiment:   deps.Sentiment,
		negotiator:  deps.Negotiator,
		financing:   deps.Financing,
		followup:    deps.Followup,
		seasonality: seasonality,
		logger:      deps.Logger.WithFields(map[string]interface{}{"component": "orchestrator"}),
	}
}

// Process runs one conversation turn through the full pipeline. It never
// returns an error: every stage degrades to a neutral or fallback value so a
// fault is invisible to the caller.
func (o *Orchestrator) Process(ctx context.Context, req models.TurnRequest) models.TurnResult {
	metrics.TurnsActive.Inc()
	defer metrics.TurnsActive.Dec()

	reply := o.generateReply(ctx, req.Message)

	prefsOut, _ := o.prefs.Execute(ctx, &parsepreferences.Input{Message: req.Message})

	listings := []models.Listing{}
	if !prefsOut.Prefs.IsEmpty() {
		recsOut, _ := o.recommend.Execute(ctx, &recommendlistings.Input{Prefs: prefsOut.Prefs})
		listings = recsOut.Listings
	}

	recs := make([]models.Recommendation, 0, len(listings))
	for _, l := range listings {
		recs = append(recs, models.Recommendation{Listing: l})
	}

	if len(recs) > 0 {
		sentimentOut, _ := o.sentiment.Execute(ctx, &scoresentiment.Input{Message: req.Message})

		negotiated := o.negotiator.Negotiate(recs[0].Price, sentimentOut.Engagement.Interest, o.seasonality())
		recs[0].NegotiatedPrice = &negotiated

		reply += fmt.Sprintf(offerTemplate, recs[0].Type, recs[0].Location, negotiated)

		if wantsFinancing(req.Message) {
			options := o.financing.Options(negotiated)
			reply += fmt.Sprintf(financingTemplate, formatFinancingOptions(options))
		}

		o.logger.Debug("offer prepared", map[string]interface{}{
			"listingId":       recs[0].ID,
			"interest":        sentimentOut.Engagement.Interest,
			"negotiatedPrice": negotiated,
		})
	}

	if req.SessionEnd && req.Phone != "" && len(recs) > 0 {
		o.sendFollowup(ctx, req.Phone, recs[0])
		reply = AckReply
	}

	return models.TurnResult{
		Reply:           reply,
		Recommendations: recs,
	}
}

func (o *Orchestrator) generateReply(ctx context.Context, message string) string {
	start := time.Now()
	metrics.AgentExecutions.WithLabelValues(generatereply.AgentName).Inc()

	output, err := o.greeter.Execute(ctx, &generatereply.Input{Message: message})
	metrics.AgentDuration.WithLabelValues(generatereply.AgentName).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.AgentFailures.WithLabelValues(generatereply.AgentName, errorCode(err)).Inc()
		o.logger.Warn("reply generation failed, using fallback", map[string]interface{}{
			"error": err.Error(),
		})
		return generatereply.FallbackReply
	}
	return output.Reply
}

func (o *Orchestrator) sendFollowup(ctx context.Context, phone string, top models.Recommendation) {
	start := time.Now()
	metrics.AgentExecutions.WithLabelValues(sendfollowup.AgentName).Inc()

	message := fmt.Sprintf(followupTemplate, top.Type, top.Location, *top.NegotiatedPrice)
	_, err := o.followup.Execute(ctx, &sendfollowup.Input{Phone: phone, Message: message})
	metrics.AgentDuration.WithLabelValues(sendfollowup.AgentName).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.AgentFailures.WithLabelValues(sendfollowup.AgentName, errorCode(err)).Inc()
		o.logger.Warn("follow-up delivery failed", map[string]interface{}{
			"phone": phone,
			"error": err.Error(),
		})
	}
}

func wantsFinancing(message string) bool {
	lower := strings.ToLower(message)
	return strings.Contains(lower, "loan") || strings.Contains(lower, "emi")
}

func formatFinancingOptions(options []models.FinancingOption) string {
	parts := make([]string, 0, len(options))
	for _, opt := range options {
		parts = append(parts, fmt.Sprintf("%s: $%.2f/month", opt.Label, opt.MonthlyPayment))
	}
	return strings.Join(parts, " and ")
}

func errorCode(err error) string {
	var stdErr *apperrors.StandardError
	if errors.As(err, &stdErr) {
		return string(stdErr.Code)
	}
	return "UNKNOWN"
}
