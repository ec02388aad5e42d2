package agent

import (
	"context"

	"github.com/numaan0/travel-genius/pkg/trip"
)

// Callbacks carries the optional lifecycle hooks a caller can attach to a
// transport call to drive incremental UI feedback. The underlying call is a
// single blocking request/response, so OnProgress fires exactly twice: right
// before sending and right after receiving. Every field may be nil.
//
// Cancellation never reaches OnError: a canceled call resolves to a nil
// result with no error, since user-initiated cancellation is not a failure.
type Callbacks[T any] struct {
	OnProgress func(message string)
	OnComplete func(result T)
	OnError    func(err error)
}

func (cb Callbacks[T]) progress(message string) {
	if cb.OnProgress != nil {
		cb.OnProgress(message)
	}
}

func (cb Callbacks[T]) complete(result T) {
	if cb.OnComplete != nil {
		cb.OnComplete(result)
	}
}

func (cb Callbacks[T]) fail(err error) {
	if cb.OnError != nil {
		cb.OnError(err)
	}
}

// AskQuestionStream wraps AskQuestion with progress callbacks.
func (c *Client) AskQuestionStream(ctx context.Context, question string, cb Callbacks[*trip.AssistantResponse]) (*trip.AssistantResponse, error) {
	if ctx.Err() != nil {
		return nil, nil
	}

	cb.progress("💬 Processing your question...")

	result, err := c.AskQuestion(ctx, question)
	if err != nil {
		cb.fail(err)
		return nil, err
	}
	if result == nil {
		// Canceled mid-flight; resolve silently.
		return nil, nil
	}

	cb.progress("✅ Response received!")
	cb.complete(result)
	return result, nil
}

// GenerateItineraryStream wraps GenerateItinerary with progress callbacks.
func (c *Client) GenerateItineraryStream(ctx context.Context, req TripRequest, cb Callbacks[*trip.TravelItinerary]) (*trip.TravelItinerary, error) {
	if ctx.Err() != nil {
		return nil, nil
	}

	cb.progress("🚀 Generating your itinerary...")

	result, err := c.GenerateItinerary(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, nil
		}
		cb.fail(err)
		return nil, err
	}

	cb.progress("✅ Itinerary generated successfully!")
	cb.complete(result)
	return result, nil
}
