package queue

import (
    "encoding/json"
    "errors"
    "fmt"
    "log"
    "os"
    "path/filepath"
    "time"

    amqp "github.com/rabbitmq/amqp091-go"
)

// StartTicketConsumer connects to RabbitMQ, declares the ticket queues
// (durable) and consumes both, appending one line per event to
// logs/tickets.log and logs/verifications.log.  It runs a reconnect loop
// with capped exponential backoff and never returns under normal
// operation; processing errors reject the offending message without
// requeueing so a poison message cannot wedge the consumer.
func StartTicketConsumer() error {
    backoff := time.Second
    for {
        conn, err := amqp.Dial(brokerURL())
        if err != nil {
            log.Printf("ticket-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
            time.Sleep(backoff)
            if backoff < 30*time.Second {
                backoff *= 2
            }
            continue
        }
        backoff = time.Second

        if err := consumeLoop(conn); err != nil {
            log.Printf("ticket-consumer: consume loop ended: %v; reconnecting", err)
            time.Sleep(2 * time.Second)
        }
    }
}

func consumeLoop(conn *amqp.Connection) error {
    defer func() { _ = conn.Close() }()

    ch, err := conn.Channel()
    if err != nil {
        return fmt.Errorf("channel open: %w", err)
    }
    defer func() { _ = ch.Close() }()

    if err := ch.Qos(50, 0, false); err != nil {
        log.Printf("ticket-consumer: set QoS failed: %v", err)
    }

    for _, name := range []string{TicketIssuedQueue, TicketVerifiedQueue} {
        if _, err := ch.QueueDeclare(name, true, false, false, false, nil); err != nil {
            return fmt.Errorf("queue declare %s: %w", name, err)
        }
    }

    issued, err := ch.Consume(TicketIssuedQueue, "", false, false, false, false, nil)
    if err != nil {
        return fmt.Errorf("consume %s: %w", TicketIssuedQueue, err)
    }
    verified, err := ch.Consume(TicketVerifiedQueue, "", false, false, false, false, nil)
    if err != nil {
        return fmt.Errorf("consume %s: %w", TicketVerifiedQueue, err)
    }

    for {
        select {
        case d, ok := <-issued:
            if !ok {
                return errors.New("issued deliveries channel closed")
            }
            ackOrReject(d, handleIssued(d.Body))
        case d, ok := <-verified:
            if !ok {
                return errors.New("verified deliveries channel closed")
            }
            ackOrReject(d, handleVerified(d.Body))
        }
    }
}

func ackOrReject(d amqp.Delivery, err error) {
    if err != nil {
        log.Printf("ticket-consumer: handle message failed: %v", err)
        _ = d.Nack(false, false)
        return
    }
    _ = d.Ack(false)
}

func handleIssued(body []byte) error {
    var ev TicketIssuedEvent
    if err := json.Unmarshal(body, &ev); err != nil {
        return fmt.Errorf("unmarshal: %w", err)
    }
    line := fmt.Sprintf("[%s] Ticket issued | ticket_id=%s | travel_id=%s | passenger=%q | count=%d | class=%s | date=%s | km=%.1f | total=%.2f | by=%q\n",
        ev.IssuedAt, ev.TicketID, ev.TravelID, ev.PassengerName, ev.PassengerCount, ev.ClassType, ev.TravelDate, ev.Kilometres, ev.TotalPrice, ev.IssuedBy)
    return appendLine("tickets.log", line)
}

func handleVerified(body []byte) error {
    var ev TicketVerifiedEvent
    if err := json.Unmarshal(body, &ev); err != nil {
        return fmt.Errorf("unmarshal: %w", err)
    }
    line := fmt.Sprintf("[%s] Verification %s | travel_id=%s | fraud=%t | by=%q | details=%q\n",
        ev.VerifiedAt, ev.Status, ev.TravelID, ev.FraudAttempt, ev.VerifiedBy, ev.Details)
    return appendLine("verifications.log", line)
}

func appendLine(name, line string) error {
    if err := os.MkdirAll("logs", 0o755); err != nil {
        return fmt.Errorf("mkdir logs: %w", err)
    }
    f, err := os.OpenFile(filepath.Join("logs", name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
    if err != nil {
        return fmt.Errorf("open log file: %w", err)
    }
    defer f.Close()
    if _, err := f.WriteString(line); err != nil {
        return fmt.Errorf("write log: %w", err)
    }
    return nil
}
