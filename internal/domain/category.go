package domain

type Category string

const (
	CategoryLibrary     Category = "ห้องสมุดประชาชน"
	CategorySubDistrict Category = "ศกร.ตำบล (ศูนย์ส่งเสริมการเรียนรู้ระดับตำบล)"
	CategoryCommunityLC Category = "ศูนย์การเรียนรู้ชุมชน (ศรช.)"
	CategoryCoLearning  Category = "Co-Learning Space"
	CategoryWisdom      Category = "ภูมิปัญญาท้องถิ่น/ปราชญ์ชาวบ้าน"
	CategoryOccupation  Category = "ศูนย์ฝึกอาชีพ/ผลิตภัณฑ์ชุมชน"
	CategoryTourism     Category = "แหล่งท่องเที่ยวเชิงนิเวศ/วัฒนธรรม"
	CategoryOther       Category = "แหล่งเรียนรู้อื่นๆ"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryLibrary,
	CategorySubDistrict,
	CategoryCommunityLC,
	CategoryCoLearning,
	CategoryWisdom,
	CategoryOccupation,
	CategoryTourism,
	CategoryOther,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
