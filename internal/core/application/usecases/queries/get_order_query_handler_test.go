package queries_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/deliveryrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/adapters/out/postgres/paymentrepo"
	"marketplace/internal/adapters/out/postgres/pgtest"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/payment"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	database   *pgtest.Database
	handler    queries.GetOrderQueryHandler
	orders     *orderrepo.GormOrderRepository
	deliveries *deliveryrepo.GormDeliveryRepository
	approvals  *paymentrepo.GormApprovalRepository

	sellerA, sellerB kernel.UUID
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}

func (suite *GetOrderQueryHandlerTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background(), postgres.Models()...)
	suite.Require().NoError(err)
	suite.database = database

	suite.handler = queries.NewGetOrderQueryHandler(database.DB)
	suite.orders = orderrepo.NewGormOrderRepository(database.DB, noopTracker{})
	suite.deliveries = deliveryrepo.NewGormDeliveryRepository(database.DB, noopTracker{})
	suite.approvals = paymentrepo.NewGormApprovalRepository(database.DB)
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate("payment_approvals", "deliveries", "order_lines", "orders"))
	suite.sellerA = kernel.NewUUID()
	suite.sellerB = kernel.NewUUID()
}

func (suite *GetOrderQueryHandlerTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

// placeOrder stores a Machakos order with one line per seller: 2 x Ksh 750
// from seller A and 1 x Ksh 400 from seller B, delivery Ksh 200.
func (suite *GetOrderQueryHandlerTestSuite) placeOrder(paymentType kernel.PaymentType) *order.Order {
	loc, err := kernel.ResolveLocation("Machakos")
	suite.Require().NoError(err)
	lineA, err := order.NewLine(kernel.NewUUID(), suite.sellerA, "Kiondo basket", 2, kernel.Shillings(750))
	suite.Require().NoError(err)
	lineB, err := order.NewLine(kernel.NewUUID(), suite.sellerB, "Kikoi", 1, kernel.Shillings(400))
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.Line{lineA, lineB}, loc,
		kernel.Shillings(200), kernel.Shillings(100), "KARIBU", paymentType, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orders.Add(context.Background(), o))
	return o
}

// confirm approves payment, confirms the order and opens its delivery.
func (suite *GetOrderQueryHandlerTestSuite) confirm(o *order.Order, adminID kernel.UUID) *delivery.Delivery {
	ctx := context.Background()
	now := time.Now()
	suite.Require().NoError(o.SubmitPayment("QK71ABC123", now))
	suite.Require().NoError(o.ApprovePayment(now))
	suite.Require().NoError(o.Confirm(now))
	suite.Require().NoError(suite.orders.Update(ctx, o))

	approval, err := payment.NewApproval(o.ID(), adminID, payment.Approve, "", now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.approvals.Add(ctx, approval))

	d, err := delivery.NewDelivery(o.ID(), o.DeliveryFee(), now)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.deliveries.Add(ctx, d))
	return d
}

func (suite *GetOrderQueryHandlerTestSuite) get(orderID, actorID kernel.UUID, role kernel.Role) (queries.GetOrderResponse, error) {
	query, err := queries.NewGetOrderQuery(orderID, actorID, role)
	suite.Require().NoError(err)
	return suite.handler.Handle(context.Background(), query)
}

func (suite *GetOrderQueryHandlerTestSuite) TestBuyerSeesOwnPendingOrder() {
	o := suite.placeOrder(kernel.PayBeforeDelivery)

	resp, err := suite.get(o.ID(), o.BuyerID(), kernel.RoleBuyer)
	suite.Require().NoError(err)

	suite.Equal(o.ID().String(), resp.ID)
	suite.Equal(queries.LocationView{County: "Machakos", Province: "Eastern"}, resp.DeliveryLocation)
	suite.Require().Len(resp.Items, 2)
	suite.Equal("Kiondo basket", resp.Items[0].Name)
	suite.Equal("Ksh 1500", resp.Items[0].Total.String())
	suite.Equal("Ksh 1900", resp.Subtotal.String())
	suite.Equal("Ksh 100", resp.DiscountAmount.String())
	suite.Equal("Ksh 200", resp.DeliveryFee.String())
	suite.Equal("Ksh 2000", resp.Total.String())
	suite.Equal("KARIBU", resp.VoucherCode)
	suite.Equal("PENDING", resp.Status)
	suite.Equal("UNPAID", resp.PaymentStatus)
	suite.Equal("BEFORE_DELIVERY", resp.PaymentType)
	suite.Nil(resp.Delivery)
	suite.Empty(resp.PaymentApprovals)
}

func (suite *GetOrderQueryHandlerTestSuite) TestOtherBuyerGetsNotFound() {
	o := suite.placeOrder(kernel.PayAfterDelivery)

	_, err := suite.get(o.ID(), kernel.NewUUID(), kernel.RoleBuyer)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderQueryHandlerTestSuite) TestSellerSeesOnlyOwnLines() {
	o := suite.placeOrder(kernel.PayAfterDelivery)

	resp, err := suite.get(o.ID(), suite.sellerB, kernel.RoleSeller)
	suite.Require().NoError(err)

	suite.Require().Len(resp.Items, 1)
	suite.Equal("Kikoi", resp.Items[0].Name)

	_, err = suite.get(o.ID(), kernel.NewUUID(), kernel.RoleSeller)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderQueryHandlerTestSuite) TestAdminSeesDeliveryAndApprovals() {
	adminID := kernel.NewUUID()
	o := suite.placeOrder(kernel.PayBeforeDelivery)
	d := suite.confirm(o, adminID)

	resp, err := suite.get(o.ID(), adminID, kernel.RoleAdmin)
	suite.Require().NoError(err)

	suite.Equal("CONFIRMED", resp.Status)
	suite.Equal("APPROVED", resp.PaymentStatus)
	suite.Equal("QK71ABC123", resp.PaymentReference)
	suite.Require().NotNil(resp.Delivery)
	suite.Equal(d.TrackingID(), resp.Delivery.TrackingID)
	suite.Equal("ASSIGNED", resp.Delivery.Status)
	suite.Equal("Ksh 200", resp.Delivery.Fee.String())
	suite.Nil(resp.Delivery.AgentID)
	suite.Require().Len(resp.PaymentApprovals, 1)
	suite.Equal(adminID.String(), resp.PaymentApprovals[0].AdminID)
	suite.Equal("APPROVE", resp.PaymentApprovals[0].Decision)
}

func (suite *GetOrderQueryHandlerTestSuite) TestDeliveryAgentVisibility() {
	ctx := context.Background()
	o := suite.placeOrder(kernel.PayBeforeDelivery)
	d := suite.confirm(o, kernel.NewUUID())
	agent := kernel.NewUUID()

	_, err := suite.get(o.ID(), agent, kernel.RoleDeliveryAgent)
	suite.Require().NoError(err, "unclaimed deliveries are visible to every agent")

	suite.Require().NoError(d.PickUp(agent, time.Now()))
	suite.Require().NoError(suite.deliveries.Update(ctx, d))

	resp, err := suite.get(o.ID(), agent, kernel.RoleDeliveryAgent)
	suite.Require().NoError(err)
	suite.Equal("PICKED_UP", resp.Delivery.Status)
	suite.Require().NotNil(resp.Delivery.AgentID)
	suite.Equal(agent.String(), *resp.Delivery.AgentID)
	suite.NotNil(resp.Delivery.PickedUpAt)
	suite.Empty(resp.PaymentApprovals)

	_, err = suite.get(o.ID(), kernel.NewUUID(), kernel.RoleDeliveryAgent)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderQueryHandlerTestSuite) TestAgentCannotSeeOrderWithoutDelivery() {
	o := suite.placeOrder(kernel.PayAfterDelivery)

	_, err := suite.get(o.ID(), kernel.NewUUID(), kernel.RoleDeliveryAgent)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderQueryHandlerTestSuite) TestUnknownOrder() {
	_, err := suite.get(kernel.NewUUID(), kernel.NewUUID(), kernel.RoleAdmin)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *GetOrderQueryHandlerTestSuite) TestZeroValueQuery() {
	_, err := suite.handler.Handle(context.Background(), queries.GetOrderQuery{})

	suite.Require().ErrorIs(err, queries.ErrGetOrderQueryIsNotConstructed)
}
