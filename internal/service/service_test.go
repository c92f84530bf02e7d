// internal/service/service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"demo/printshop/internal/events"
	"demo/printshop/internal/model"
	"demo/printshop/internal/store"
	"demo/printshop/internal/store/storemock"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, e events.Event) error {
	p.events = append(p.events, e)
	return p.err
}

func ptr[T any](v T) *T { return &v }

func newService(t *testing.T, opts ...Option) (*Service, *storemock.MockRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockRepo := storemock.NewMockRepository(ctrl)
	return New(mockRepo, opts...), mockRepo
}

func TestService_AddVariation_DefaultsAccessory(t *testing.T) {
	svc, mockRepo := newService(t)

	want := model.Variation{ProductID: 4, Size: "XL", Accessory: "None", Price: 12.5}
	mockRepo.EXPECT().AddVariation(gomock.Any(), want).Return(model.Variation{ID: 9, ProductID: 4, Size: "XL", Accessory: "None", Price: 12.5}, nil)

	got, err := svc.AddVariation(context.Background(), 4, model.VariationInput{Size: " XL ", Price: ptr(12.5)})
	require.NoError(t, err)
	require.Equal(t, int64(9), got.ID)
	require.Equal(t, "None", got.Accessory)
}

func TestService_AddVariation_Invalid(t *testing.T) {
	svc, _ := newService(t) // no repository call expected

	cases := map[string]model.VariationInput{
		"missing size":  {Price: ptr(10.0)},
		"missing price": {Size: "M"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.AddVariation(context.Background(), 1, in)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
		})
	}
}

func TestService_AddVariation_UnknownProduct(t *testing.T) {
	svc, mockRepo := newService(t)
	mockRepo.EXPECT().AddVariation(gomock.Any(), gomock.Any()).Return(model.Variation{}, store.ErrMissingReference)

	_, err := svc.AddVariation(context.Background(), 77, model.VariationInput{Size: "S", Price: ptr(1.0)})
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	require.Equal(t, "product", nf.Entity)
	require.Equal(t, int64(77), nf.ID)
}

func TestService_UpdateVariationPrice_UnknownIDSucceeds(t *testing.T) {
	svc, mockRepo := newService(t)
	mockRepo.EXPECT().UpdateVariationPrice(gomock.Any(), int64(404), 3.5).Return(int64(0), nil)

	require.NoError(t, svc.UpdateVariationPrice(context.Background(), 404, model.PriceInput{Price: ptr(3.5)}))
}

func TestService_DeleteVariation_StoreFailure(t *testing.T) {
	svc, mockRepo := newService(t)
	mockRepo.EXPECT().DeleteVariation(gomock.Any(), int64(1)).Return(int64(0), errors.New("conn reset"))

	err := svc.DeleteVariation(context.Background(), 1)
	var de *DataStoreError
	require.ErrorAs(t, err, &de)
	require.Contains(t, err.Error(), "conn reset")
}

func TestService_UpsertCustomer_TrimsAndDefaultsName(t *testing.T) {
	pub := &recordingPublisher{}
	svc, mockRepo := newService(t, WithEvents(pub))

	mockRepo.EXPECT().
		UpsertCustomer(gomock.Any(), model.Customer{Name: "Unnamed", Company: "Acme", Email: "a@acme.test"}).
		Return(int64(12), nil)

	id, err := svc.UpsertCustomer(context.Background(), model.CustomerInput{Company: "  Acme ", Email: "a@acme.test"})
	require.NoError(t, err)
	require.Equal(t, int64(12), id)
	require.Len(t, pub.events, 1)
	require.Equal(t, events.CustomerUpserted, pub.events[0].Type)
}

func TestService_UpsertCustomer_BlankIdentity(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.UpsertCustomer(context.Background(), model.CustomerInput{Name: "  ", Company: ""})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestService_SearchCustomers_UsesLimit(t *testing.T) {
	svc, mockRepo := newService(t)
	mockRepo.EXPECT().SearchCustomers(gomock.Any(), "acme", SearchLimit).Return([]model.Customer{{ID: 1}}, nil)

	got, err := svc.SearchCustomers(context.Background(), "  acme ")
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestService_CreateEstimate_ComputesTotalFromCatalog(t *testing.T) {
	pub := &recordingPublisher{}
	svc, mockRepo := newService(t, WithEvents(pub))

	in := model.DraftInput{
		CustomerID:     ptr(int64(5)),
		VariationItems: []model.VariationItem{{VariationID: 7, Quantity: 2}},
	}
	mockRepo.EXPECT().VariationPrices(gomock.Any(), []int64{7}).Return(map[int64]float64{7: 10.00}, nil)
	mockRepo.EXPECT().CreateEstimate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d model.Draft) (int64, error) {
			require.Equal(t, 21.2, d.Total)
			require.Equal(t, int64(5), d.CustomerID)
			require.Len(t, d.Items, 1)
			return 31, nil
		})

	saved, err := svc.CreateEstimate(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, Saved{ID: 31, Total: 21.2}, saved)
	require.Len(t, pub.events, 1)
	require.Equal(t, events.EstimateCreated, pub.events[0].Type)
	require.Equal(t, 21.2, *pub.events[0].Total)
}

func TestService_CreateEstimate_CustomItemsDefaultAccessory(t *testing.T) {
	svc, mockRepo := newService(t)

	in := model.DraftInput{
		CustomerID: ptr(int64(1)),
		CustomItems: []model.CustomItem{
			{ProductName: " Banner ", Size: "3x6", Price: 40, Quantity: 1},
			{ProductName: "Sticker", Price: 0.5, Quantity: 100, Accessory: "Laminate"},
		},
	}
	mockRepo.EXPECT().VariationPrices(gomock.Any(), []int64{}).Return(map[int64]float64{}, nil)
	mockRepo.EXPECT().CreateEstimate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d model.Draft) (int64, error) {
			require.Equal(t, "Banner", d.CustomItems[0].ProductName)
			require.Equal(t, "None", d.CustomItems[0].Accessory)
			require.Equal(t, "Laminate", d.CustomItems[1].Accessory)
			return 2, nil
		})

	saved, err := svc.CreateEstimate(context.Background(), in)
	require.NoError(t, err)
	require.Equal(t, 95.4, saved.Total)
}

func TestService_CreateEstimate_MissingCustomer(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.CreateEstimate(context.Background(), model.DraftInput{})
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestService_CreateEstimate_UnknownVariation(t *testing.T) {
	svc, mockRepo := newService(t)

	mockRepo.EXPECT().VariationPrices(gomock.Any(), []int64{3, 8}).Return(map[int64]float64{3: 1}, nil)

	_, err := svc.CreateEstimate(context.Background(), model.DraftInput{
		CustomerID:     ptr(int64(1)),
		VariationItems: []model.VariationItem{{VariationID: 3, Quantity: 1}, {VariationID: 8, Quantity: 1}, {VariationID: 3, Quantity: 4}},
	})
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	require.Equal(t, int64(8), nf.ID)
}

func TestService_CreateEstimate_UnknownCustomer(t *testing.T) {
	svc, mockRepo := newService(t)

	mockRepo.EXPECT().VariationPrices(gomock.Any(), gomock.Any()).Return(map[int64]float64{}, nil)
	mockRepo.EXPECT().CreateEstimate(gomock.Any(), gomock.Any()).Return(int64(0), store.ErrMissingReference)

	_, err := svc.CreateEstimate(context.Background(), model.DraftInput{CustomerID: ptr(int64(99))})
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	require.Equal(t, "customer", nf.Entity)
}

func TestService_UpdateEstimate_NotFound(t *testing.T) {
	pub := &recordingPublisher{}
	svc, mockRepo := newService(t, WithEvents(pub))

	mockRepo.EXPECT().VariationPrices(gomock.Any(), gomock.Any()).Return(map[int64]float64{}, nil)
	mockRepo.EXPECT().UpdateEstimate(gomock.Any(), int64(55), gomock.Any()).Return(false, nil)

	_, err := svc.UpdateEstimate(context.Background(), 55, model.DraftInput{CustomerID: ptr(int64(1))})
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	require.Equal(t, "estimate", nf.Entity)
	require.Empty(t, pub.events)
}

func TestService_ListEstimates_UsesCurrentPrices(t *testing.T) {
	svc, mockRepo := newService(t)

	mockRepo.EXPECT().ListEstimates(gomock.Any()).Return([]model.Estimate{
		{ID: 2, Total: 10.6, Subtotal: 20},
		{ID: 1, Total: 5, Subtotal: 0},
	}, nil)

	got, err := svc.ListEstimates(context.Background())
	require.NoError(t, err)
	require.Equal(t, 21.2, got[0].Total)
	require.Equal(t, 0.0, got[1].Total)
}

func TestService_DeleteEstimate_PublishesOnlyWhenDeleted(t *testing.T) {
	pub := &recordingPublisher{}
	svc, mockRepo := newService(t, WithEvents(pub))

	mockRepo.EXPECT().DeleteEstimate(gomock.Any(), int64(1)).Return(true, nil)
	mockRepo.EXPECT().DeleteEstimate(gomock.Any(), int64(2)).Return(false, nil)

	require.NoError(t, svc.DeleteEstimate(context.Background(), 1))
	require.NoError(t, svc.DeleteEstimate(context.Background(), 2))
	require.Len(t, pub.events, 1)
	require.Equal(t, int64(1), pub.events[0].EntityID)
}

func TestService_PublishFailureIsNotFatal(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("kafka unavailable")}
	svc, mockRepo := newService(t, WithEvents(pub))

	mockRepo.EXPECT().VariationPrices(gomock.Any(), gomock.Any()).Return(map[int64]float64{}, nil)
	mockRepo.EXPECT().CreateInvoice(gomock.Any(), gomock.Any()).Return(int64(3), nil)

	saved, err := svc.CreateInvoice(context.Background(), model.DraftInput{CustomerID: ptr(int64(1))})
	require.NoError(t, err)
	require.Equal(t, int64(3), saved.ID)
}

func TestService_InvoiceItems_CachedUntilDelete(t *testing.T) {
	svc, mockRepo := newService(t, WithInvoiceItemCache())

	items := []model.LineItem{{Type: model.LineCustom, ProductName: "Banner", Price: 40, Quantity: 1}}
	gomock.InOrder(
		mockRepo.EXPECT().InvoiceItems(gomock.Any(), int64(4)).Return(items, nil).Times(1),
		mockRepo.EXPECT().DeleteInvoice(gomock.Any(), int64(4)).Return(true, nil),
		mockRepo.EXPECT().InvoiceItems(gomock.Any(), int64(4)).Return([]model.LineItem{}, nil),
	)

	for i := 0; i < 3; i++ {
		got, err := svc.InvoiceItems(context.Background(), 4)
		require.NoError(t, err)
		require.Equal(t, items, got)
	}
	require.NoError(t, svc.DeleteInvoice(context.Background(), 4))

	got, err := svc.InvoiceItems(context.Background(), 4)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestService_InvoiceItems_RepricedVariationIsNotServedStale(t *testing.T) {
	svc, mockRepo := newService(t, WithInvoiceItemCache())
	vid := int64(7)
	line := func(price float64) []model.LineItem {
		return []model.LineItem{{Type: model.LineVariation, VariationID: &vid, ProductName: "Tee", Size: "M", Price: price, Quantity: 2}}
	}
	gomock.InOrder(
		mockRepo.EXPECT().InvoiceItems(gomock.Any(), int64(4)).Return(line(10), nil),
		mockRepo.EXPECT().UpdateVariationPrice(gomock.Any(), vid, 12.0).Return(int64(1), nil),
		mockRepo.EXPECT().InvoiceItems(gomock.Any(), int64(4)).Return(line(12), nil),
		mockRepo.EXPECT().DeleteVariation(gomock.Any(), vid).Return(int64(1), nil),
		mockRepo.EXPECT().InvoiceItems(gomock.Any(), int64(4)).Return(line(0), nil),
	)
	ctx := context.Background()

	got, err := svc.InvoiceItems(ctx, 4)
	require.NoError(t, err)
	require.Equal(t, 10.0, got[0].Price)

	require.NoError(t, svc.UpdateVariationPrice(ctx, vid, model.PriceInput{Price: ptr(12.0)}))
	got, err = svc.InvoiceItems(ctx, 4)
	require.NoError(t, err)
	require.Equal(t, 12.0, got[0].Price)

	require.NoError(t, svc.DeleteVariation(ctx, vid))
	got, err = svc.InvoiceItems(ctx, 4)
	require.NoError(t, err)
	require.Zero(t, got[0].Price)
}

func TestService_InvoiceItems_UnknownVariationKeepsCache(t *testing.T) {
	svc, mockRepo := newService(t, WithInvoiceItemCache())
	items := []model.LineItem{{Type: model.LineCustom, ProductName: "Banner", Price: 40, Quantity: 1}}
	mockRepo.EXPECT().InvoiceItems(gomock.Any(), int64(4)).Return(items, nil).Times(1)
	mockRepo.EXPECT().UpdateVariationPrice(gomock.Any(), int64(99), 1.0).Return(int64(0), nil)

	_, err := svc.InvoiceItems(context.Background(), 4)
	require.NoError(t, err)
	require.NoError(t, svc.UpdateVariationPrice(context.Background(), 99, model.PriceInput{Price: ptr(1.0)}))
	got, err := svc.InvoiceItems(context.Background(), 4)
	require.NoError(t, err)
	require.Equal(t, items, got)
}

func TestService_InvoiceItems_DeleteDuringReadIsNotCached(t *testing.T) {
	svc, mockRepo := newService(t, WithInvoiceItemCache())
	ctx := context.Background()
	items := []model.LineItem{{Type: model.LineCustom, ProductName: "Banner", Price: 40, Quantity: 1}}

	gomock.InOrder(
		mockRepo.EXPECT().InvoiceItems(gomock.Any(), int64(4)).
			DoAndReturn(func(context.Context, int64) ([]model.LineItem, error) {
				// The invoice is deleted after its rows were read.
				require.NoError(t, svc.DeleteInvoice(ctx, 4))
				return items, nil
			}),
		mockRepo.EXPECT().DeleteInvoice(gomock.Any(), int64(4)).Return(true, nil),
		mockRepo.EXPECT().InvoiceItems(gomock.Any(), int64(4)).Return([]model.LineItem{}, nil),
	)

	got, err := svc.InvoiceItems(ctx, 4)
	require.NoError(t, err)
	require.Equal(t, items, got)

	got, err = svc.InvoiceItems(ctx, 4)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestService_GetInvoice_NotFound(t *testing.T) {
	svc, mockRepo := newService(t)
	mockRepo.EXPECT().GetInvoice(gomock.Any(), int64(6)).Return(model.Invoice{}, false, nil)

	_, err := svc.GetInvoice(context.Background(), 6)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
}
