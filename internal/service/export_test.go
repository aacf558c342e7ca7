package service

import "time"

// Clock overrides for external tests. The services read the wall clock
// through an unexported field so tests can pin report windows and record
// identifiers to a fixed instant.

func SetRecordServiceClock(s RecordService, now func() time.Time) {
	s.(*recordService).now = now
}

func SetReportServiceClock(s ReportService, now func() time.Time) {
	s.(*reportService).now = now
}
