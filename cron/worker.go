package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"weddinghub/config"
	guestSvc "weddinghub/services/guest"

	"github.com/hibiken/asynq"
)

// TypeInvitationSend is the task type for scheduled invitation dispatch.
const TypeInvitationSend = "invitation:send"

// invitationPayload is the queued task body.
type invitationPayload struct {
	UserID string `json:"userId"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// Scheduler enqueues invitation dispatch tasks. It implements the scheduling
// hook the account service calls when invitation settings change.
type Scheduler struct {
	client *asynq.Client
}

// NewScheduler creates a Scheduler with its own queue client.
func NewScheduler() *Scheduler {
	return &Scheduler{client: asynq.NewClient(redisOpts())}
}

// ScheduleInvitations enqueues a dispatch task to fire at sendAt. Re-saving
// the settings enqueues again; the dispatch itself skips guests already
// invited, so duplicate tasks are harmless.
func (s *Scheduler) ScheduleInvitations(userID string, sendAt time.Time) error {
	payload, err := json.Marshal(invitationPayload{UserID: userID})
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypeInvitationSend, payload)
	_, err = s.client.Enqueue(task, asynq.ProcessAt(sendAt), asynq.MaxRetry(3))
	return err
}

// InitInvitationWorker runs the queue worker in the background.
func InitInvitationWorker(guests guestSvc.GuestService) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeInvitationSend, handleInvitationTask(guests))

	go func() {
		log.Println("[InvitationWorker] starting queue worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			err := srv.Run(mux)
			if err == nil {
				break
			}
			log.Printf("[InvitationWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)
			if attempts == maxAttempts {
				log.Fatal("[InvitationWorker] max retry attempts reached, exiting")
			}
			time.Sleep(time.Duration(attempts*2) * time.Second)
		}
	}()
}

func handleInvitationTask(guests guestSvc.GuestService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p invitationPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[InvitationWorker] invalid payload: %v", err)
			return err
		}

		result, err := guests.SendInvitations(p.UserID)
		if err != nil {
			log.Printf("[InvitationWorker] dispatch failed for user %s: %v", p.UserID, err)
			return err
		}
		log.Printf("[InvitationWorker] dispatched invitations for user %s: sent=%d skipped=%d failed=%d",
			p.UserID, result.Sent, result.Skipped, len(result.Failures))
		return nil
	}
}
