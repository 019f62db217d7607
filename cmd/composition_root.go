package cmd

import (
	"brickmarket/internal/adapters/out/postgres"
	"brickmarket/internal/core/application/usecases/commands"
	"brickmarket/internal/core/application/usecases/queries"
	"brickmarket/internal/core/domain/model/kernel"
	"brickmarket/internal/core/domain/services"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() (commands.CheckoutCommandHandler, error) {
	var f commands.WorkflowUoWFactory = FuncWorkflowUoWFactory(func() commands.WorkflowUoW {
		return c.uowFactory.Create()
	})

	deliveryCharges, err := kernel.MoneyFromString(c.config.DeliveryCharge)
	if err != nil {
		return commands.CheckoutCommandHandler{}, err
	}

	splitter, err := services.NewCheckoutSplitter(deliveryCharges)
	if err != nil {
		return commands.CheckoutCommandHandler{}, err
	}

	return commands.NewCheckoutCommandHandler(f, splitter), nil
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.WorkflowUoWFactory = FuncWorkflowUoWFactory(func() commands.WorkflowUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateChangePaymentStatusCommandHandler() commands.ChangePaymentStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangePaymentStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderDetailsQueryHandler() queries.GetOrderDetailsQueryHandler {
	return queries.NewGetOrderDetailsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverdueVerificationOrdersQueryHandler() queries.GetOverdueVerificationOrdersQueryHandler {
	return queries.NewGetOverdueVerificationOrdersQueryHandler(c.gormDB)
}

type FuncWorkflowUoWFactory func() commands.WorkflowUoW

func (f FuncWorkflowUoWFactory) Create() commands.WorkflowUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
