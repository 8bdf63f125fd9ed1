package export

import (
    "fmt"
    "io"

    "github.com/xuri/excelize/v2"

    "github.com/iliyamo/railway-ticketing/internal/model"
)

// WriteWorkbook renders tickets and verification logs into one XLSX
// workbook with a sheet per section: Tickets, Platform Tickets,
// Verification Logs, Revenue.  Used by the daily report job and the
// manual export download.
func WriteWorkbook(w io.Writer, tickets, platformTickets []model.Ticket, logs []model.VerificationLog) error {
    f := excelize.NewFile()
    defer func() { _ = f.Close() }()

    if err := writeTicketsSheet(f, "Tickets", tickets, false); err != nil {
        return err
    }
    if err := writeTicketsSheet(f, "Platform Tickets", platformTickets, true); err != nil {
        return err
    }
    if err := writeLogsSheet(f, logs); err != nil {
        return err
    }
    all := append(append([]model.Ticket{}, tickets...), platformTickets...)
    if err := writeRevenueSheet(f, SummariseRevenue(all)); err != nil {
        return err
    }

    // Default Sheet1 is replaced by the first real sheet.
    f.DeleteSheet("Sheet1")
    if idx, err := f.GetSheetIndex("Tickets"); err == nil {
        f.SetActiveSheet(idx)
    }
    return f.Write(w)
}

func writeTicketsSheet(f *excelize.File, sheet string, tickets []model.Ticket, platform bool) error {
    if _, err := f.NewSheet(sheet); err != nil {
        return err
    }
    header := []interface{}{
        "Travel ID", "Passenger Name", "Passengers", "Class", "Seat",
        "Travel Date", "Kilometres", "Price", "Total Price",
        "Verified", "Verified By", "Issued By",
    }
    if platform {
        header = []interface{}{
            "Travel ID", "Passenger Name", "Passengers",
            "Price", "Total Price", "Verified", "Verified By", "Issued By",
        }
    }
    if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
        return err
    }
    for i, t := range tickets {
        verified := "No"
        if t.IsVerified {
            verified = "Yes"
        }
        var row []interface{}
        if platform {
            row = []interface{}{
                t.TravelID, t.PassengerName, t.PassengerCount,
                t.Price, t.TotalPrice, verified, strOrEmpty(t.VerifiedBy), t.CreatedBy,
            }
        } else {
            row = []interface{}{
                t.TravelID, t.PassengerName, t.PassengerCount,
                model.TravelClass(t.ClassType).DisplayName(), strOrEmpty(t.SeatNumber),
                t.TravelDate, t.Kilometres, t.Price, t.TotalPrice,
                verified, strOrEmpty(t.VerifiedBy), t.CreatedBy,
            }
        }
        cell := fmt.Sprintf("A%d", i+2)
        if err := f.SetSheetRow(sheet, cell, &row); err != nil {
            return err
        }
    }
    return nil
}

func writeLogsSheet(f *excelize.File, logs []model.VerificationLog) error {
    const sheet = "Verification Logs"
    if _, err := f.NewSheet(sheet); err != nil {
        return err
    }
    header := []interface{}{"Travel ID", "Status", "Fraud Attempt", "Verified By", "Verified At", "Details"}
    if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
        return err
    }
    for i, l := range logs {
        fraud := "No"
        if l.FraudAttempt {
            fraud = "Yes"
        }
        row := []interface{}{
            l.TravelID, string(l.Status), fraud, l.VerifiedBy,
            l.VerifiedAt.UTC().Format("2006-01-02 15:04:05"), l.Details,
        }
        cell := fmt.Sprintf("A%d", i+2)
        if err := f.SetSheetRow(sheet, cell, &row); err != nil {
            return err
        }
    }
    return nil
}

func writeRevenueSheet(f *excelize.File, rows []RevenueRow) error {
    const sheet = "Revenue"
    if _, err := f.NewSheet(sheet); err != nil {
        return err
    }
    header := []interface{}{"Class", "Tickets", "Passengers", "Revenue"}
    if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
        return err
    }
    for i, r := range rows {
        name := model.TravelClass(r.ClassType).DisplayName()
        if r.ClassType == model.ClassTypePlatform {
            name = "Platform"
        }
        row := []interface{}{name, r.Tickets, r.Passengers, r.Revenue}
        cell := fmt.Sprintf("A%d", i+2)
        if err := f.SetSheetRow(sheet, cell, &row); err != nil {
            return err
        }
    }
    return nil
}
