package sweeper_test

import (
	"context"
	"errors"
	"testing"

	"reception/config"
	preventiveMocks "reception/internal/domains/preventive/service/mocks"
	reportDto "reception/internal/domains/report/model/dto"
	reportMocks "reception/internal/domains/report/service/mocks"
	workorderMocks "reception/internal/domains/workorder/service/mocks"
	"reception/internal/sweeper"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestSweeper_RunOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	preventiveSvc := preventiveMocks.NewMockPreventive(ctrl)
	workorderSvc := workorderMocks.NewMockWorkOrder(ctrl)
	reportSvc := reportMocks.NewMockReport(ctrl)

	cfg := &config.Config{}

	s := sweeper.New(preventiveSvc, workorderSvc, reportSvc, cfg)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "full cycle",
			setupMock: func() {
				preventiveSvc.EXPECT().Scan(gomock.Any()).Return(2, nil)
				workorderSvc.EXPECT().AssignUrgent(gomock.Any()).Return(1, nil)
				reportSvc.EXPECT().ArchiveDaily(gomock.Any(), gomock.Any()).
					Return(reportDto.DailyReportResponse{CompletionRate: 75}, nil)
			},
			wantErr: false,
		},
		{
			name: "quiet cycle",
			setupMock: func() {
				preventiveSvc.EXPECT().Scan(gomock.Any()).Return(0, nil)
				workorderSvc.EXPECT().AssignUrgent(gomock.Any()).Return(0, nil)
				reportSvc.EXPECT().ArchiveDaily(gomock.Any(), gomock.Any()).
					Return(reportDto.DailyReportResponse{}, nil)
			},
			wantErr: false,
		},
		{
			name: "scan fails",
			setupMock: func() {
				preventiveSvc.EXPECT().Scan(gomock.Any()).Return(0, errors.New("db down"))
			},
			wantErr: true,
		},
		{
			name: "urgent assignment fails",
			setupMock: func() {
				preventiveSvc.EXPECT().Scan(gomock.Any()).Return(0, nil)
				workorderSvc.EXPECT().AssignUrgent(gomock.Any()).Return(0, errors.New("db down"))
			},
			wantErr: true,
		},
		{
			name: "archiving fails",
			setupMock: func() {
				preventiveSvc.EXPECT().Scan(gomock.Any()).Return(0, nil)
				workorderSvc.EXPECT().AssignUrgent(gomock.Any()).Return(0, nil)
				reportSvc.EXPECT().ArchiveDaily(gomock.Any(), gomock.Any()).
					Return(reportDto.DailyReportResponse{}, errors.New("s3 unreachable"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := s.RunOnce(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
