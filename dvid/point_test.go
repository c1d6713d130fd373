package dvid

import (
	"testing"

	. "github.com/janelia-flyem/go/gocheck"
)

// Hook up gocheck into the "go test" runner.
func Test(t *testing.T) { TestingT(t) }

type DataSuite struct{}

var _ = Suite(&DataSuite{})

func (s *DataSuite) TestPoint3d(c *C) {
	a := Point3d{10, 21, 837821}
	b := Point3d{78312, -200, 40123}
	result := a.Add(b)
	c.Assert(result, Equals, Point3d{a[0] + b[0], a[1] + b[1], a[2] + b[2]})

	result = a.Sub(b)
	c.Assert(result, Equals, Point3d{a[0] - b[0], a[1] - b[1], a[2] - b[2]})

	result = a.Mod(b)
	c.Assert(result, Equals, Point3d{a[0] % b[0], a[1] % b[1], a[2] % b[2]})

	result = a.Div(b)
	c.Assert(result, Equals, Point3d{a[0] / b[0], a[1] / b[1], a[2] / b[2]})

	result = Point3d{3, 4, 5}.Mult(Point3d{2, 2, 1})
	c.Assert(result, Equals, Point3d{6, 8, 5})

	c.Assert(a.String(), Equals, "(10,21,837821)")
	c.Assert(a.Max(b), Equals, Point3d{78312, 21, 837821})
	c.Assert(b.Max(a), Equals, Point3d{78312, 21, 837821})

	c.Assert(Point3d{64, 64, 16}.Prod(), Equals, int64(65536))
	c.Assert(Point3d{1, 0, 1}.Positive(), Equals, false)
	c.Assert(Point3d{1, 2, 1}.Positive(), Equals, true)
}

func (s *DataSuite) TestStringToPoint(c *C) {
	p, err := StringToPoint3d("64, 32,16", ",")
	c.Assert(err, IsNil)
	c.Assert(p, Equals, Point3d{64, 32, 16})

	_, err = StringToPoint3d("64,32", ",")
	c.Assert(err, NotNil)

	_, err = StringToPoint3d("64,x,16", ",")
	c.Assert(err, NotNil)

	p2, err := StringToPoint2d("7,9", ",")
	c.Assert(err, IsNil)
	c.Assert(p2, Equals, Point2d{7, 9})
	c.Assert(p2.Prod(), Equals, int64(63))
}

func (s *DataSuite) TestVolume(c *C) {
	v := NewVolume[uint64](Point3d{4, 3, 2})
	c.Assert(len(v.Data), Equals, 24)
	c.Assert(v.Validate(), IsNil)
	c.Assert(v.NumBytes(), Equals, uint64(24*8))

	v.SetValue(3, 2, 1, 17)
	c.Assert(v.Data[1*12+2*4+3], Equals, uint64(17))
	c.Assert(v.Value(3, 2, 1), Equals, uint64(17))
	c.Assert(v.Index(1, 1, 1), Equals, 17)

	_, err := MakeVolume(make([]uint8, 10), Point3d{4, 3, 1})
	c.Assert(err, NotNil)

	_, err = MakeVolume(make([]uint8, 0), Point3d{0, 3, 1})
	c.Assert(err, NotNil)

	w, err := MakeVolume(make([]float32, 12), Point3d{4, 3, 1})
	c.Assert(err, IsNil)
	c.Assert(w.NumVoxels(), Equals, int64(12))
}

func (s *DataSuite) TestLogMode(c *C) {
	m, err := ParseLogMode("Warning")
	c.Assert(err, IsNil)
	c.Assert(m, Equals, WarningMode)

	m, err = ParseLogMode("")
	c.Assert(err, IsNil)
	c.Assert(m, Equals, InfoMode)

	_, err = ParseLogMode("chatty")
	c.Assert(err, NotNil)

	old := LogMode()
	SetLogMode(SilentMode)
	Errorf("this should not be written\n")
	c.Assert(LogMode(), Equals, SilentMode)
	SetLogMode(old)
}
