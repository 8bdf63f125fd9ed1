package service

import (
    "context"
    "strings"
    "time"

    "github.com/iliyamo/railway-ticketing/internal/model"
)

// IssueRequest carries everything a ticket creator submits for a journey
// ticket.  TravelDate is "2006-01-02".  Price, when set, overrides the
// route's per-passenger fare: the creation form pre-fills the resolved
// fare but lets the creator edit it before issuing.
type IssueRequest struct {
    PassengerName  string
    PassengerCount int
    FromStationID  string
    ToStationID    string
    TrainID        string
    Class          model.TravelClass
    SeatNumber     string
    TravelDate     string
    Price          *float64
}

// PlatformIssueRequest carries the inputs for a platform-entry ticket.
type PlatformIssueRequest struct {
    PassengerName  string
    PassengerCount int
    Price          float64
}

// Issuer validates issuance requests and persists tickets.  All
// preconditions are checked before the insert, so a rejected request
// writes nothing.
type Issuer struct {
    Stations StationStore
    Trains   TrainStore
    Tickets  TicketStore
    Now      func() time.Time
}

func (s *Issuer) now() time.Time {
    if s.Now != nil {
        return s.Now()
    }
    return time.Now()
}

// IssueTicket validates and persists a journey ticket on behalf of the
// acting staff member.  The origin station must be the station the actor
// works at; creators cannot sell departures from other stations.
func (s *Issuer) IssueTicket(ctx context.Context, actor model.ActingUser, req IssueRequest) (*model.Ticket, error) {
    name := strings.TrimSpace(req.PassengerName)
    if name == "" {
        return nil, validationErr("passenger name is required")
    }
    if req.FromStationID == "" || req.ToStationID == "" {
        return nil, validationErr("origin and destination stations are required")
    }
    if req.TrainID == "" {
        return nil, validationErr("train is required")
    }
    if !req.Class.Valid() {
        return nil, validationErr("invalid travel class")
    }
    if strings.TrimSpace(req.SeatNumber) == "" {
        return nil, validationErr("seat selection is required")
    }
    if req.PassengerCount < 1 {
        return nil, validationErr("passenger count must be at least 1")
    }
    travelDate, err := time.ParseInLocation("2006-01-02", req.TravelDate, time.UTC)
    if err != nil {
        return nil, validationErr("travel date must be YYYY-MM-DD")
    }

    origin, err := s.Stations.GetByID(ctx, req.FromStationID)
    if err != nil {
        return nil, err
    }
    if !strings.EqualFold(strings.TrimSpace(origin.Name), strings.TrimSpace(actor.WorkingStation)) {
        return nil, validationErr("tickets can only be issued from your working station")
    }
    if _, err := s.Stations.GetByID(ctx, req.ToStationID); err != nil {
        return nil, err
    }

    days, err := s.Trains.ActiveWeekdays(ctx, req.TrainID)
    if err != nil {
        return nil, err
    }
    if !RunsOn(days, travelDate) {
        return nil, validationErr("train does not run on the selected date")
    }
    halts, err := s.Trains.Halts(ctx, req.TrainID)
    if err != nil {
        return nil, err
    }
    seg, ok := ResolveSegment(halts, req.FromStationID, req.ToStationID)
    if !ok {
        return nil, validationErr("train does not serve this route in that direction")
    }
    distance := seg.Distance()
    if distance <= 0 {
        return nil, validationErr("route distance not available")
    }

    price := req.Class.DefaultFare()
    if p := seg.From.FareFor(req.Class); p != nil {
        price = *p
    }
    if req.Price != nil {
        if *req.Price <= 0 {
            return nil, validationErr("price must be greater than zero")
        }
        price = *req.Price
    }
    if price <= 0 {
        return nil, validationErr("fare not available for this class")
    }

    now := s.now().UTC()
    createdTime := now.Format("15:04")
    seat := strings.TrimSpace(req.SeatNumber)
    t := &model.Ticket{
        TravelID:       NewTravelID(origin.Code),
        PassengerName:  name,
        PassengerCount: req.PassengerCount,
        FromStationID:  &req.FromStationID,
        ToStationID:    &req.ToStationID,
        TrainID:        &req.TrainID,
        Kilometres:     distance,
        TravelDate:     req.TravelDate,
        CreatedTime:    createdTime,
        DepartureTime:  seg.From.DepartureTime,
        ArrivalTime:    seg.To.ArrivalTime,
        Price:          price,
        TotalPrice:     price * float64(req.PassengerCount),
        TicketClass:    string(model.ClassGeneral),
        ClassType:      string(req.Class),
        SeatNumber:     &seat,
        ExpiresAt:      StandardExpiry(req.TravelDate, createdTime),
        CreatedBy:      actor.DisplayIdentity(),
    }
    if err := s.Tickets.Insert(ctx, t); err != nil {
        return nil, err
    }
    return t, nil
}

// IssuePlatformTicket validates and persists a platform-entry ticket.
// Platform tickets carry no route: no stations, no train, zero
// kilometres, and they expire 24 hours after issuance.
func (s *Issuer) IssuePlatformTicket(ctx context.Context, actor model.ActingUser, req PlatformIssueRequest) (*model.Ticket, error) {
    name := strings.TrimSpace(req.PassengerName)
    if name == "" {
        return nil, validationErr("passenger name is required")
    }
    if req.PassengerCount < 1 {
        return nil, validationErr("passenger count must be at least 1")
    }
    if req.Price <= 0 {
        return nil, validationErr("price must be greater than zero")
    }
    if strings.TrimSpace(actor.WorkingStation) == "" {
        return nil, validationErr("issuing staff has no working station")
    }

    now := s.now().UTC()
    t := &model.Ticket{
        TravelID:       NewPlatformTravelID(now),
        PassengerName:  name,
        PassengerCount: req.PassengerCount,
        Kilometres:     0,
        TravelDate:     now.Format("2006-01-02"),
        CreatedTime:    now.Format("15:04"),
        Price:          req.Price,
        TotalPrice:     req.Price * float64(req.PassengerCount),
        TicketClass:    string(model.ClassGeneral),
        ClassType:      model.ClassTypePlatform,
        ExpiresAt:      PlatformExpiry(now),
        CreatedBy:      actor.DisplayIdentity(),
    }
    if err := s.Tickets.Insert(ctx, t); err != nil {
        return nil, err
    }
    return t, nil
}
