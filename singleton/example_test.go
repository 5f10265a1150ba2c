package singleton_test

import (
	"errors"
	"fmt"

	"github.com/sghaida/solo/singleton"
)

type Pool struct {
	Addr string
}

func (p *Pool) Close() error {
	fmt.Println("pool closed:", p.Addr)
	return nil
}

func Example() {
	reg := singleton.New()

	_ = singleton.RegisterLazy(reg, func() *Pool {
		fmt.Println("dialing")
		return &Pool{Addr: "10.0.0.1:5432"}
	})

	fmt.Println("created:", singleton.IsCreated[*Pool](reg))
	pool := singleton.GetInstance[*Pool](reg)
	fmt.Println("addr:", pool.Addr)
	fmt.Println("created:", singleton.IsCreated[*Pool](reg))

	_ = singleton.Dispose[*Pool](reg)
	fmt.Println("registered:", singleton.IsRegistered[*Pool](reg))

	// Output:
	// created: false
	// dialing
	// addr: 10.0.0.1:5432
	// created: true
	// pool closed: 10.0.0.1:5432
	// registered: false
}

func ExampleRegisterInstance() {
	reg := singleton.New()

	_ = singleton.RegisterInstance(reg, &Pool{Addr: "primary"})
	err := singleton.RegisterInstance(reg, &Pool{Addr: "replica"})

	fmt.Println(errors.Is(err, singleton.ErrAlreadyRegistered))
	fmt.Println(singleton.GetInstance[*Pool](reg).Addr)

	// Output:
	// true
	// primary
}

func ExampleRegisterLazyHandle() {
	reg := singleton.New()
	handle := singleton.NewLazy(func() *Pool { return &Pool{Addr: "shared"} })

	_ = singleton.RegisterLazyHandle(reg, handle)

	fmt.Println(handle.Value() == singleton.GetInstance[*Pool](reg))

	// Output:
	// true
}

func ExampleRegistry_Snapshot() {
	reg := singleton.New()
	_ = singleton.RegisterInstance(reg, &Pool{Addr: "primary"})
	_ = singleton.RegisterLazy(reg, func() *Logger { return &Logger{} })

	for _, e := range reg.Snapshot().Entries {
		fmt.Println(e.Type, e.Kind, e.Created)
	}

	// Output:
	// *singleton_test.Logger lazy false
	// *singleton_test.Pool eager true
}
