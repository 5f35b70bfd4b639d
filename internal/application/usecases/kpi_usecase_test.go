package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/elevateplus/coaching-api/internal/application/usecases"
	"github.com/elevateplus/coaching-api/internal/domain/entities"
	"github.com/elevateplus/coaching-api/internal/infrastructure/cache"
	"github.com/elevateplus/coaching-api/internal/validation"
	. "github.com/smartystreets/goconvey/convey"
	"gorm.io/gorm"
)

type fakeKPIRepo struct {
	kpis            map[string]entities.KPI
	enabled         map[string]bool
	enabledReads    int
	enablementReads int
}

func (f *fakeKPIRepo) CreateKPI(_ context.Context, kpi *entities.KPI) error {
	f.kpis[kpi.KPIID] = *kpi
	return nil
}

func (f *fakeKPIRepo) GetKPIs(context.Context, int, int, string) ([]entities.KPI, int64, error) {
	return nil, 0, nil
}

func (f *fakeKPIRepo) GetKPIsByIDs(_ context.Context, ids []string) ([]entities.KPI, error) {
	var kpis []entities.KPI
	for _, id := range ids {
		if kpi, ok := f.kpis[id]; ok {
			kpis = append(kpis, kpi)
		}
	}
	return kpis, nil
}

func (f *fakeKPIRepo) UpsertEnablement(_ context.Context, enablement *entities.CampaignKPI) error {
	f.enabled[enablement.KPIID] = enablement.IsEnabled
	return nil
}

func (f *fakeKPIRepo) GetEnablements(_ context.Context, _ string) ([]entities.CampaignKPI, error) {
	f.enablementReads++
	var rows []entities.CampaignKPI
	for kpiID, isEnabled := range f.enabled {
		rows = append(rows, entities.CampaignKPI{CampaignID: campaignID, KPIID: kpiID, IsEnabled: isEnabled})
	}
	return rows, nil
}

func (f *fakeKPIRepo) GetEnabledKPIs(_ context.Context, _ string) ([]entities.KPI, error) {
	f.enabledReads++
	var kpis []entities.KPI
	for kpiID, isEnabled := range f.enabled {
		if isEnabled {
			kpis = append(kpis, f.kpis[kpiID])
		}
	}
	return kpis, nil
}

type fakeCampaignRepo struct {
	campaigns map[string]*entities.Campaign
}

func (f *fakeCampaignRepo) CreateCampaign(_ context.Context, campaign *entities.Campaign) error {
	f.campaigns[campaign.CampaignID] = campaign
	return nil
}

func (f *fakeCampaignRepo) GetCampaigns(context.Context, int, int, string) ([]entities.Campaign, int64, error) {
	return nil, 0, nil
}

func (f *fakeCampaignRepo) GetCampaignByID(_ context.Context, id string) (*entities.Campaign, error) {
	if campaign, ok := f.campaigns[id]; ok {
		return campaign, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func kpiFixture() (usecases.KPIUseCase, *fakeKPIRepo) {
	kpiRepo := &fakeKPIRepo{
		kpis: map[string]entities.KPI{
			kpiCSAT: {KPIID: kpiCSAT, KPIName: "CSAT", KPIType: entities.KPITypePercentage},
			kpiQA:   {KPIID: kpiQA, KPIName: "Quality", KPIType: entities.KPITypeRating},
		},
		enabled: map[string]bool{kpiCSAT: true, kpiQA: false},
	}
	campaignRepo := &fakeCampaignRepo{campaigns: map[string]*entities.Campaign{
		campaignID: {CampaignID: campaignID, CampaignName: "Inbound Support", IsActive: true, CreatedAt: time.Now().UTC()},
	}}
	return usecases.NewKPIUseCase(kpiRepo, campaignRepo, cache.New()), kpiRepo
}

func TestKPIUseCase(t *testing.T) {
	ctx := context.Background()

	Convey("Given a campaign catalog with one enabled and one disabled KPI", t, func() {
		uc, repo := kpiFixture()

		Convey("When the enabled set is read twice", func() {
			first, err := uc.GetEnabledKPIs(ctx, campaignID)
			So(err, ShouldBeNil)
			second, err := uc.GetEnabledKPIs(ctx, campaignID)
			So(err, ShouldBeNil)

			Convey("Then the second read is served from cache", func() {
				So(len(first), ShouldEqual, 1)
				So(second, ShouldResemble, first)
				So(repo.enabledReads, ShouldEqual, 1)
			})
		})

		Convey("When the toggle matrix is read twice", func() {
			first, err := uc.GetEnablements(ctx, campaignID)
			So(err, ShouldBeNil)
			_, err = uc.GetEnablements(ctx, campaignID)
			So(err, ShouldBeNil)

			Convey("Then disabled rows are included and the cache absorbs the repeat", func() {
				So(len(first), ShouldEqual, 2)
				So(repo.enablementReads, ShouldEqual, 1)
			})
		})

		Convey("When a KPI is toggled on after both views were cached", func() {
			_, err := uc.GetEnabledKPIs(ctx, campaignID)
			So(err, ShouldBeNil)
			_, err = uc.GetEnablements(ctx, campaignID)
			So(err, ShouldBeNil)

			_, err = uc.ToggleEnablement(ctx, campaignID, kpiQA, usecases.ToggleEnablementRequest{IsEnabled: true})
			So(err, ShouldBeNil)

			Convey("Then both cached views of the campaign are dropped", func() {
				kpis, err := uc.GetEnabledKPIs(ctx, campaignID)
				So(err, ShouldBeNil)
				So(len(kpis), ShouldEqual, 2)

				rows, err := uc.GetEnablements(ctx, campaignID)
				So(err, ShouldBeNil)
				enabledCount := 0
				for _, row := range rows {
					if row.IsEnabled {
						enabledCount++
					}
				}
				So(enabledCount, ShouldEqual, 2)
				So(repo.enabledReads, ShouldEqual, 2)
				So(repo.enablementReads, ShouldEqual, 2)
			})
		})

		Convey("When toggling against an unknown campaign", func() {
			_, err := uc.ToggleEnablement(ctx, "missing", kpiQA, usecases.ToggleEnablementRequest{IsEnabled: true})
			So(err, ShouldEqual, usecases.ErrNotFound)
		})

		Convey("When toggling an unknown KPI", func() {
			_, err := uc.ToggleEnablement(ctx, campaignID, "missing", usecases.ToggleEnablementRequest{IsEnabled: true})
			So(err, ShouldEqual, usecases.ErrNotFound)
		})

		Convey("When creating a KPI with an unrecognized type", func() {
			_, err := uc.CreateKPI(ctx, usecases.CreateKPIRequest{KPIName: "NPS", KPIType: "Net Promoter"})
			_, ok := validation.AsError(err)
			So(ok, ShouldBeTrue)
		})
	})
}
